package catalog

import (
	"strings"
	"time"

	"econ-cdn/core/utils"
)

// Sources are the raw inputs of one catalog generation.
type Sources struct {
	// ItemsGame is the items catalog, bare or wrapped in an "items_game" key.
	ItemsGame Tree
	// Localization is the localization tree, walked recursively from its root.
	Localization Tree
	// Manifest is the parsed CDN manifest. Nil is treated as empty.
	Manifest Manifest
}

// Normalize validates the raw sources and builds a new Snapshot.
// It fails with an *IntegrityError when a required section is absent or malformed.
func Normalize(src Sources) (*Snapshot, error) {
	if src.ItemsGame == nil {
		return nil, &IntegrityError{Section: "items_game", Reason: "catalog tree is missing"}
	}
	if src.Localization == nil {
		return nil, &IntegrityError{Section: SectionLocalization, Reason: "localization tree is missing"}
	}

	root := src.ItemsGame
	if wrapped, ok := child(root, "items_game"); ok {
		root = wrapped
	}

	sections := make(map[string]Tree, len(RequiredSections))
	for _, name := range RequiredSections {
		v, ok := root.Get(name)
		if !ok {
			return nil, &IntegrityError{Section: name, Reason: "section is missing"}
		}
		t, ok := asTree(v)
		if !ok {
			return nil, &IntegrityError{Section: name, Reason: "section is not an object"}
		}
		sections[name] = t
	}

	snap := &Snapshot{
		LoadedAt:       time.Now(),
		Localization:   NewLocalization(src.Localization),
		Manifest:       src.Manifest,
		itemsByKey:     make(map[string]int),
		prefabsByKey:   make(map[string]int),
		paintKitsByKey: make(map[string]int),
	}
	if snap.Manifest == nil {
		snap.Manifest = Manifest{}
	}

	err := eachRecord(sections[SectionItems], SectionItems, func(key string, t Tree) {
		snap.itemsByKey[key] = len(snap.Items)
		snap.Items = append(snap.Items, Item{
			Key:            key,
			DefIndex:       utils.ToInt(key),
			Name:           str(t, "name"),
			NameTag:        strings.ToLower(str(t, "item_name")),
			ImageInventory: str(t, "image_inventory"),
			Prefabs:        strings.Fields(str(t, "prefab")),
			UsedBy:         usedBy(t),
		})
	})
	if err != nil {
		return nil, err
	}

	err = eachRecord(sections[SectionPrefabs], SectionPrefabs, func(key string, t Tree) {
		snap.prefabsByKey[key] = len(snap.Prefabs)
		snap.Prefabs = append(snap.Prefabs, Prefab{
			Key:            key,
			NameTag:        strings.ToLower(str(t, "item_name")),
			ItemClass:      str(t, "item_class"),
			ImageInventory: str(t, "image_inventory"),
			Parents:        strings.Fields(str(t, "prefab")),
			UsedBy:         usedBy(t),
		})
	})
	if err != nil {
		return nil, err
	}

	err = eachRecord(sections[SectionPaintKits], SectionPaintKits, func(key string, t Tree) {
		snap.paintKitsByKey[key] = len(snap.PaintKits)
		snap.PaintKits = append(snap.PaintKits, PaintKit{
			Key:            key,
			ID:             utils.ToInt(key),
			Name:           str(t, "name"),
			DescriptionTag: strings.ToLower(str(t, "description_tag")),
		})
	})
	if err != nil {
		return nil, err
	}

	err = eachRecord(sections[SectionStickerKits], SectionStickerKits, func(key string, t Tree) {
		snap.StickerKits = append(snap.StickerKits, StickerKit{
			Key:             key,
			ID:              utils.ToInt(key),
			Name:            str(t, "name"),
			NameTag:         strings.ToLower(str(t, "item_name")),
			StickerMaterial: str(t, "sticker_material"),
			PatchMaterial:   str(t, "patch_material"),
		})
	})
	if err != nil {
		return nil, err
	}

	err = eachRecord(sections[SectionMusicDefinitions], SectionMusicDefinitions, func(key string, t Tree) {
		snap.MusicDefinitions = append(snap.MusicDefinitions, MusicDefinition{
			Key:            key,
			ID:             utils.ToInt(key),
			Name:           str(t, "name"),
			NameTag:        strings.ToLower(str(t, "loc_name")),
			ImageInventory: str(t, "image_inventory"),
		})
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// eachRecord calls fn for every record of a section in declaration order.
func eachRecord(section Tree, name string, fn func(key string, t Tree)) error {
	for _, key := range section.Keys() {
		v, _ := section.Get(key)
		t, ok := asTree(v)
		if !ok {
			return &IntegrityError{Section: name, Key: key, Reason: "record is not an object"}
		}
		fn(key, t)
	}
	return nil
}
