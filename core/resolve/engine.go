package resolve

import (
	"strconv"
	"strings"

	"econ-cdn/core/assets"
	"econ-cdn/core/catalog"
	"econ-cdn/core/cdn"
)

// Resource directories inside the game files.
const (
	flashRoot       = "resource/flash/"
	stickerDir      = "resource/flash/econ/stickers/"
	patchDir        = "resource/flash/econ/patches/"
	statusIconDir   = "resource/flash/econ/status_icons/"
	imageExtension  = ".png"
	largeFileSuffix = "_large"
)

// Categories toggles which asset families the engine serves. A disabled category
// resolves to no result.
type Categories struct {
	Weapons     bool `mapstructure:"weapons" default:"true"`
	Stickers    bool `mapstructure:"stickers" default:"true"`
	Patches     bool `mapstructure:"patches" default:"true"`
	Graffiti    bool `mapstructure:"graffiti" default:"true"`
	MusicKits   bool `mapstructure:"music_kits" default:"true"`
	StatusIcons bool `mapstructure:"status_icons" default:"true"`
	Generic     bool `mapstructure:"generic" default:"true"`
}

// AllCategories enables every asset family.
func AllCategories() Categories {
	return Categories{
		Weapons:     true,
		Stickers:    true,
		Patches:     true,
		Graffiti:    true,
		MusicKits:   true,
		StatusIcons: true,
		Generic:     true,
	}
}

// Enabled reports whether the kind is served.
func (c Categories) Enabled(k Kind) bool {
	switch k {
	case KindWeapon:
		return c.Weapons
	case KindSticker:
		return c.Stickers
	case KindPatch:
		return c.Patches
	case KindGraffiti:
		return c.Graffiti
	case KindMusicKit:
		return c.MusicKits
	default:
		return c.Generic
	}
}

// Options are the per-call hints of ResolveItemImageURL.
type Options struct {
	Phase Phase
}

// Engine resolves names against one catalog snapshot.
type Engine struct {
	snap       *catalog.Snapshot
	assets     assets.Source
	builder    *cdn.Builder
	categories Categories
}

// Option configures an Engine.
type Option func(*Engine)

// WithBuilder sets the URL builder.
func WithBuilder(b *cdn.Builder) Option {
	return func(e *Engine) { e.builder = b }
}

// WithCategories restricts the served asset families.
func WithCategories(c Categories) Option {
	return func(e *Engine) { e.categories = c }
}

// New creates an Engine over snap, reading asset bytes from src.
// A nil snapshot or source yields an Engine that never resolves anything.
func New(snap *catalog.Snapshot, src assets.Source, opts ...Option) *Engine {
	e := &Engine{
		snap:       snap,
		assets:     src,
		builder:    cdn.NewBuilder("", nil),
		categories: AllCategories(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Snapshot returns the snapshot the engine reads.
func (e *Engine) Snapshot() *catalog.Snapshot {
	return e.snap
}

// Classify classifies displayName against the engine's snapshot.
func (e *Engine) Classify(displayName string) Classification {
	return Classify(e.snap, displayName)
}

// ResolveItemImageURL resolves a display name such as "AWP | Redline (Field-Tested)".
func (e *Engine) ResolveItemImageURL(displayName string, opts Options) (string, bool) {
	url, _, ok := e.Resolve(displayName, opts)
	return url, ok
}

// Resolve is ResolveItemImageURL that also reports the classified kind.
func (e *Engine) Resolve(displayName string, opts Options) (string, Kind, bool) {
	if e.snap == nil {
		return "", KindGeneric, false
	}

	c := e.Classify(displayName)
	if !e.categories.Enabled(c.Kind) {
		return "", c.Kind, false
	}

	var (
		url string
		ok  bool
	)
	switch c.Kind {
	case KindWeapon:
		url, ok = e.resolveWeapon(c.Stripped, opts.Phase)
	case KindMusicKit:
		url, ok = e.resolveMusicKit(c.Stripped)
	case KindSticker, KindGraffiti, KindPatch:
		url, ok = e.resolveStickerLike(c.Original, c.Kind, true)
	default:
		url, ok = e.resolveGeneric(c.Original)
	}
	return url, c.Kind, ok
}

// StickerURL returns the URL of a sticker by its sticker_material, e.g.
// "cologne2016/astr_gold".
func (e *Engine) StickerURL(material string, large bool) (string, bool) {
	if !e.categories.Stickers {
		return "", false
	}
	return e.pathURL(materialPath(stickerDir, material, large))
}

// PatchURL returns the URL of a patch by its patch_material.
func (e *Engine) PatchURL(material string, large bool) (string, bool) {
	if !e.categories.Patches {
		return "", false
	}
	return e.pathURL(materialPath(patchDir, material, large))
}

// StatusIconURL returns the URL of a status icon by its internal name.
func (e *Engine) StatusIconURL(name string, large bool) (string, bool) {
	if !e.categories.StatusIcons {
		return "", false
	}
	return e.pathURL(materialPath(statusIconDir, name, large))
}

// InventoryURL returns the URL of an image_inventory value such as
// "econ/music_kits/valve_01".
func (e *Engine) InventoryURL(image string) (string, bool) {
	return e.pathURL(inventoryPath(image))
}

// WeaponURL returns the manifest asset of a weapon definition index painted with a
// paint kit index. Paint index 0 or the "default" kit selects the vanilla weapon.
func (e *Engine) WeaponURL(defIndex, paintIndex int) (string, bool) {
	if e.snap == nil || !e.categories.Weapons {
		return "", false
	}
	item, ok := e.snap.Item(strconv.Itoa(defIndex))
	if !ok || item.Name == "" {
		return "", false
	}

	key := item.Name
	if kit, ok := e.snap.PaintKit(strconv.Itoa(paintIndex)); ok && kit.Name != "" && kit.Name != "default" {
		key += "_" + kit.Name
	}
	return e.manifestURL(key)
}

// pathURL content-addresses the asset at resourcePath.
func (e *Engine) pathURL(resourcePath string) (string, bool) {
	if e.assets == nil || resourcePath == "" {
		return "", false
	}
	data, err := e.assets.Asset(resourcePath)
	if err != nil {
		return "", false
	}
	return e.builder.Build(resourcePath, data)
}

// manifestURL looks up a manifest key. Absolute references are returned as they are;
// anything else is treated as a resource path.
func (e *Engine) manifestURL(key string) (string, bool) {
	ref, ok := e.snap.Manifest.Lookup(key)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, true
	}
	return e.pathURL(ref)
}

func materialPath(dir, name string, large bool) string {
	name = strings.Trim(strings.TrimSpace(name), "/")
	if name == "" {
		return ""
	}
	if large {
		name += largeFileSuffix
	}
	return dir + name + imageExtension
}

// inventoryPath maps an image_inventory value to its resource path.
func inventoryPath(image string) string {
	image = strings.Trim(strings.TrimSpace(image), "/")
	if image == "" {
		return ""
	}
	return flashRoot + image + imageExtension
}
