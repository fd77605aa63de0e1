// Package catalogtest provides a small, realistic catalog for tests.
package catalogtest

import (
	"context"
	"io"
	"strings"
	"testing"

	"econ-cdn/core/catalog"
	"econ-cdn/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// ItemsGame is a trimmed items_game tree. It keeps the shapes the resolvers depend
// on: weapons defined through prefabs, a knife defined only as an item, Doppler
// phases, a sticker/graffiti name collision and a key that only exists as a prefab.
const ItemsGame = `{
  "items_game": {
    "prefabs": {
      "weapon_awp_prefab": {
        "item_class": "weapon_awp",
        "item_name": "#SFUI_WPNHUD_AWP",
        "used_by_classes": {"counter-terrorists": "1", "terrorists": "1"}
      },
      "melee": {
        "used_by_classes": {"counter-terrorists": "1", "terrorists": "1"}
      },
      "melee_unusual": {"prefab": "melee"},
      "weapon_case_base": {"image_inventory": "econ/weapon_cases/crate_base"},
      "weapon_case_key": {"image_inventory": "econ/tools/weapon_case_key"},
      "community_key_2": {
        "item_name": "#CSGO_crate_key_community_2",
        "image_inventory": "econ/tools/crate_key_community_2"
      }
    },
    "items": {
      "9": {"name": "weapon_awp", "prefab": "weapon_awp_prefab", "item_name": "#SFUI_WPNHUD_AWP"},
      "507": {"name": "weapon_knife_karambit", "prefab": "melee_unusual", "item_name": "#SFUI_WPNHUD_knife_karambit"},
      "1203": {
        "name": "crate_community_1",
        "prefab": "weapon_case_base",
        "item_name": "#CSGO_crate_community_1",
        "image_inventory": "econ/weapon_cases/crate_community_1"
      },
      "1204": {"name": "crate_key_community_1", "prefab": "weapon_case_key", "item_name": "#CSGO_crate_key_community_1"}
    },
    "paint_kits": {
      "0": {"name": "default", "description_tag": "#PaintKit_Default"},
      "259": {"name": "cu_awp_redline", "description_tag": "#PaintKit_cu_awp_redline_Tag"},
      "279": {"name": "cu_awp_asiimov", "description_tag": "#PaintKit_cu_awp_asiimov_Tag"},
      "569": {"name": "am_gamma_doppler_phase1", "description_tag": "#PaintKit_am_gamma_doppler_phase1_Tag"},
      "568": {"name": "am_emerald_marbleized", "description_tag": "#PaintKit_am_emerald_marbleized_Tag"}
    },
    "sticker_kits": {
      "0": {"name": "default", "item_name": "#StickerKit_Default"},
      "1": {"name": "comm01_xaxes", "item_name": "#StickerKit_comm01_xaxes", "sticker_material": "community01/xaxes"},
      "2": {"name": "graffiti_xaxes", "item_name": "#StickerKit_comm01_xaxes", "sticker_material": "default/xaxes_graffiti"},
      "3": {"name": "gold_star_old", "item_name": "#StickerKit_gold_star_old", "sticker_material": "retired/gold_star"},
      "4": {"name": "gold_star", "item_name": "#StickerKit_gold_star", "sticker_material": "community02/gold_star"},
      "5": {"name": "cologne2016_nv", "item_name": "#StickerKit_cologne2016_team_nv", "sticker_material": "cologne2016/nv"},
      "4550": {"name": "patch_dust2", "item_name": "#PatchKit_patch_dust2", "patch_material": "case01/patch_dust2"}
    },
    "music_definitions": {
      "3": {
        "name": "valve_csgo_01",
        "loc_name": "#musickit_valve_csgo_01",
        "image_inventory": "econ/music_kits/valve_01"
      }
    }
  }
}`

// Localization is a trimmed csgo_english tree.
const Localization = `{
  "lang": {
    "Language": "English",
    "Tokens": {
      "SFUI_WPNHUD_AWP": "AWP",
      "SFUI_WPNHUD_knife_karambit": "Karambit",
      "PaintKit_cu_awp_redline_Tag": "Redline",
      "PaintKit_cu_awp_asiimov_Tag": "Asiimov",
      "PaintKit_am_gamma_doppler_phase1_Tag": "Gamma Doppler",
      "PaintKit_am_emerald_marbleized_Tag": "Gamma Doppler",
      "StickerKit_comm01_xaxes": "X-Axes",
      "StickerKit_gold_star_old": "Gold Star",
      "StickerKit_gold_star": "Gold Star",
      "StickerKit_cologne2016_team_nv": "Team EnVyUs | Cologne 2016",
      "PatchKit_patch_dust2": "Dust II",
      "musickit_valve_csgo_01": "Valve, CS:GO",
      "CSGO_crate_community_1": "CS:GO Weapon Case",
      "CSGO_crate_key_community_1": "CS:GO Case Key",
      "CSGO_crate_key_community_2": "eSports Key"
    }
  }
}`

// Manifest is a trimmed items_game_cdn.txt.
const Manifest = `# generated
weapon_awp=https://steamcdn-a.akamaihd.net/apps/730/icons/econ/weapons/base_weapons/weapon_awp.1a2b.png
weapon_awp_cu_awp_redline=https://steamcdn-a.akamaihd.net/apps/730/icons/econ/default_generated/weapon_awp_cu_awp_redline_light_large.7c9b.png
weapon_awp_cu_awp_asiimov=resource/flash/econ/default_generated/weapon_awp_cu_awp_asiimov_light_large.png
weapon_knife_karambit_am_gamma_doppler_phase1=https://steamcdn-a.akamaihd.net/apps/730/icons/econ/default_generated/weapon_knife_karambit_am_gamma_doppler_phase1_light_large.aa01.png
weapon_knife_karambit_am_emerald_marbleized=https://steamcdn-a.akamaihd.net/apps/730/icons/econ/default_generated/weapon_knife_karambit_am_emerald_marbleized_light_large.bb02.png
`

// Asset paths present in Assets.
const (
	StickerXAxesLarge  = "resource/flash/econ/stickers/community01/xaxes_large.png"
	StickerXAxes       = "resource/flash/econ/stickers/community01/xaxes.png"
	GraffitiXAxesLarge = "resource/flash/econ/stickers/default/xaxes_graffiti_large.png"
	StickerGoldLarge   = "resource/flash/econ/stickers/community02/gold_star_large.png"
	StickerEnVyUsLarge = "resource/flash/econ/stickers/cologne2016/nv_large.png"
	PatchDust2Large    = "resource/flash/econ/patches/case01/patch_dust2_large.png"
	PatchDust2         = "resource/flash/econ/patches/case01/patch_dust2.png"
	StatusIconLarge    = "resource/flash/econ/status_icons/service_medal_2015_large.png"
	MusicKitValve      = "resource/flash/econ/music_kits/valve_01.png"
	CaseCommunity1     = "resource/flash/econ/weapon_cases/crate_community_1.png"
	CaseKey            = "resource/flash/econ/tools/weapon_case_key.png"
	CommunityKey2      = "resource/flash/econ/tools/crate_key_community_2.png"
	AWPAsiimov         = "resource/flash/econ/default_generated/weapon_awp_cu_awp_asiimov_light_large.png"
)

// Assets returns the bytes of every asset the fixture catalog refers to, except the
// retired gold star sticker, which is missing on purpose.
func Assets() map[string][]byte {
	paths := []string{
		StickerXAxesLarge, StickerXAxes, GraffitiXAxesLarge, StickerGoldLarge, StickerEnVyUsLarge,
		PatchDust2Large, PatchDust2, StatusIconLarge, MusicKitValve,
		CaseCommunity1, CaseKey, CommunityKey2, AWPAsiimov,
	}
	m := make(map[string][]byte, len(paths))
	for _, p := range paths {
		m[p] = []byte("png:" + p)
	}
	return m
}

// Sources decodes the fixture trees.
func Sources(t testing.TB) catalog.Sources {
	t.Helper()

	items, err := catalog.DecodeTree([]byte(ItemsGame))
	if err != nil {
		t.Fatalf("decode items_game: %v", err)
	}
	loc, err := catalog.DecodeTree([]byte(Localization))
	if err != nil {
		t.Fatalf("decode localization: %v", err)
	}
	manifest, err := catalog.ParseManifest(strings.NewReader(Manifest))
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	return catalog.Sources{ItemsGame: items, Localization: loc, Manifest: manifest}
}

// Snapshot normalizes the fixture sources.
func Snapshot(t testing.TB) *catalog.Snapshot {
	t.Helper()

	snap, err := catalog.Normalize(Sources(t))
	if err != nil {
		t.Fatalf("normalize fixture: %v", err)
	}
	return snap
}

// Config names the catalog objects at their default locations.
func Config() catalog.Config {
	return catalog.Config{
		ItemsGameObject:    "catalog/items_game.json",
		LocalizationObject: "catalog/csgo_english.json",
		ManifestObject:     "catalog/items_game_cdn.txt",
		TimeoutSeconds:     5,
	}
}

// ObjectLister answers ListObjects calls with the object whose name equals the
// listed prefix, if etags has it.
func ObjectLister(etags map[string]string) func(context.Context, string, minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return func(_ context.Context, _ string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, 1)
		if etag, ok := etags[opts.Prefix]; ok {
			ch <- minio.ObjectInfo{Key: opts.Prefix, ETag: etag}
		}
		close(ch)
		return ch
	}
}

// ExpectObjects serves the fixture sources from bucket under the names in cfg.
// itemsGame replaces the items catalog body when non-empty.
func ExpectObjects(client *mocks.Client, bucket string, cfg catalog.Config, itemsGame string) {
	if itemsGame == "" {
		itemsGame = ItemsGame
	}
	bodies := map[string]string{
		cfg.ItemsGameObject:    itemsGame,
		cfg.LocalizationObject: Localization,
		cfg.ManifestObject:     Manifest,
	}
	for name, body := range bodies {
		body := body
		client.On("GetObject", mock.Anything, bucket, name, mock.Anything).
			Return(func(context.Context, string, string, minio.GetObjectOptions) io.ReadCloser {
				return io.NopCloser(strings.NewReader(body))
			}, nil)
	}
}
