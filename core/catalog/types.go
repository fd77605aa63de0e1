package catalog

import (
	"strings"
	"time"
)

// Required sections of the items catalog.
const (
	SectionItems            = "items"
	SectionPrefabs          = "prefabs"
	SectionPaintKits        = "paint_kits"
	SectionStickerKits      = "sticker_kits"
	SectionMusicDefinitions = "music_definitions"
	SectionLocalization     = "localization"
)

// RequiredSections lists the item catalog sections Normalize insists on.
var RequiredSections = []string{
	SectionItems,
	SectionPrefabs,
	SectionPaintKits,
	SectionStickerKits,
	SectionMusicDefinitions,
}

// UsedBy records which teams an item or prefab is usable by.
type UsedBy struct {
	Terrorists        bool `json:"terrorists"`
	CounterTerrorists bool `json:"counter_terrorists"`
}

// Any reports whether either side can use the record.
func (u UsedBy) Any() bool {
	return u.Terrorists || u.CounterTerrorists
}

// Item is an entry of the "items" section, keyed by definition index.
type Item struct {
	Key            string   `json:"key"`
	DefIndex       int      `json:"def_index"`
	Name           string   `json:"name"`
	NameTag        string   `json:"name_tag"`
	ImageInventory string   `json:"image_inventory,omitempty"`
	Prefabs        []string `json:"prefabs,omitempty"`
	UsedBy         UsedBy   `json:"used_by"`
}

// Prefab is a shared template that items and other prefabs inherit from.
type Prefab struct {
	Key            string   `json:"key"`
	NameTag        string   `json:"name_tag"`
	ItemClass      string   `json:"item_class,omitempty"`
	ImageInventory string   `json:"image_inventory,omitempty"`
	Parents        []string `json:"parents,omitempty"`
	UsedBy         UsedBy   `json:"used_by"`
}

// Class returns the weapon class the prefab stands for.
// Prefabs without an explicit item_class fall back to their key minus "_prefab".
func (p Prefab) Class() string {
	if p.ItemClass != "" {
		return p.ItemClass
	}
	return strings.TrimSuffix(p.Key, "_prefab")
}

// PaintKit is a skin definition. DescriptionTag is lowercased.
type PaintKit struct {
	Key            string `json:"key"`
	ID             int    `json:"id"`
	Name           string `json:"name"`
	DescriptionTag string `json:"description_tag"`
}

// StickerKit backs stickers, patches and graffiti.
type StickerKit struct {
	Key             string `json:"key"`
	ID              int    `json:"id"`
	Name            string `json:"name"`
	NameTag         string `json:"name_tag"`
	StickerMaterial string `json:"sticker_material,omitempty"`
	PatchMaterial   string `json:"patch_material,omitempty"`
}

// MusicDefinition is a music kit.
type MusicDefinition struct {
	Key            string `json:"key"`
	ID             int    `json:"id"`
	Name           string `json:"name"`
	NameTag        string `json:"name_tag"`
	ImageInventory string `json:"image_inventory,omitempty"`
}

// Snapshot is an immutable, normalized view of one catalog generation.
// It must not be modified after it has been published.
type Snapshot struct {
	Version  uint64
	LoadedAt time.Time

	Items            []Item
	Prefabs          []Prefab
	PaintKits        []PaintKit
	StickerKits      []StickerKit
	MusicDefinitions []MusicDefinition

	Localization *Localization
	Manifest     Manifest

	itemsByKey     map[string]int
	prefabsByKey   map[string]int
	paintKitsByKey map[string]int
}

// Stats summarizes the size of a snapshot.
type Stats struct {
	Version            uint64    `json:"version"`
	LoadedAt           time.Time `json:"loaded_at"`
	Items              int       `json:"items"`
	Prefabs            int       `json:"prefabs"`
	PaintKits          int       `json:"paint_kits"`
	StickerKits        int       `json:"sticker_kits"`
	MusicDefinitions   int       `json:"music_definitions"`
	LocalizationTokens int       `json:"localization_tokens"`
	ManifestEntries    int       `json:"manifest_entries"`
}

// Stats returns the section counts of the snapshot.
func (s *Snapshot) Stats() Stats {
	return Stats{
		Version:            s.Version,
		LoadedAt:           s.LoadedAt,
		Items:              len(s.Items),
		Prefabs:            len(s.Prefabs),
		PaintKits:          len(s.PaintKits),
		StickerKits:        len(s.StickerKits),
		MusicDefinitions:   len(s.MusicDefinitions),
		LocalizationTokens: s.Localization.Len(),
		ManifestEntries:    len(s.Manifest),
	}
}

// Item returns the item with the given definition index key.
func (s *Snapshot) Item(key string) (Item, bool) {
	i, ok := s.itemsByKey[key]
	if !ok {
		return Item{}, false
	}
	return s.Items[i], true
}

// Prefab returns the prefab with the given key.
func (s *Snapshot) Prefab(key string) (Prefab, bool) {
	i, ok := s.prefabsByKey[key]
	if !ok {
		return Prefab{}, false
	}
	return s.Prefabs[i], true
}

// PaintKit returns the paint kit with the given paint index key.
func (s *Snapshot) PaintKit(key string) (PaintKit, bool) {
	i, ok := s.paintKitsByKey[key]
	if !ok {
		return PaintKit{}, false
	}
	return s.PaintKits[i], true
}

// PrefabUsedBy walks the prefab chain starting at the given parents and returns the
// first used_by_classes declaration found.
func (s *Snapshot) PrefabUsedBy(parents []string) UsedBy {
	var found UsedBy
	s.walkPrefabs(parents, func(p Prefab) bool {
		if p.UsedBy.Any() {
			found = p.UsedBy
			return true
		}
		return false
	})
	return found
}

// PrefabImage walks the prefab chain starting at the given parents and returns the
// first image_inventory found.
func (s *Snapshot) PrefabImage(parents []string) string {
	var image string
	s.walkPrefabs(parents, func(p Prefab) bool {
		if p.ImageInventory != "" {
			image = p.ImageInventory
			return true
		}
		return false
	})
	return image
}

// walkPrefabs visits prefabs breadth first, each at most once, until visit returns true.
func (s *Snapshot) walkPrefabs(parents []string, visit func(Prefab) bool) {
	seen := make(map[string]struct{}, len(parents))
	queue := append([]string(nil), parents...)
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		p, ok := s.Prefab(key)
		if !ok {
			continue
		}
		if visit(p) {
			return
		}
		queue = append(queue, p.Parents...)
	}
}

// Tag converts a localization token to the lowercased "#token" form used by catalog tags.
func Tag(token string) string {
	return "#" + strings.ToLower(strings.TrimPrefix(token, "#"))
}
