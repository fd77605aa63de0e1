package resolve

import (
	"strings"

	"econ-cdn/core/catalog"
)

// Kind markers, checked against the display name.
const (
	prefixMusicKit = "Music Kit |"
	prefixSticker  = "Sticker |"
	prefixGraffiti = "Sealed Graffiti |"
	prefixPatch    = "Patch |"
)

// decorations are quality markers removed before weapon and music kit detection.
var decorations = []string{"★ ", "StatTrak™ ", "Souvenir "}

// wearSuffixes are exterior qualifiers; they never change the art asset.
var wearSuffixes = []string{
	"(Factory New)",
	"(Minimal Wear)",
	"(Field-Tested)",
	"(Well-Worn)",
	"(Battle-Scarred)",
}

// Classification is the result of Classify.
type Classification struct {
	Kind Kind
	// Stripped is the name with decorative prefixes removed.
	Stripped string
	// Original is the trimmed input.
	Original string
}

// Classify determines the kind of a display name. The predicates run in a fixed
// order: the weapon check sees the undecorated name, the sticker, graffiti and patch
// checks see the original.
func Classify(snap *catalog.Snapshot, displayName string) Classification {
	original := strings.TrimSpace(displayName)
	c := Classification{
		Kind:     KindGeneric,
		Stripped: stripDecorations(original),
		Original: original,
	}

	switch {
	case isWeapon(snap, c.Stripped):
		c.Kind = KindWeapon
	case strings.HasPrefix(c.Stripped, prefixMusicKit):
		c.Kind = KindMusicKit
	case strings.HasPrefix(original, prefixSticker):
		c.Kind = KindSticker
	case strings.HasPrefix(original, prefixGraffiti):
		c.Kind = KindGraffiti
	case strings.HasPrefix(original, prefixPatch):
		c.Kind = KindPatch
	}
	return c
}

func stripDecorations(name string) string {
	for _, d := range decorations {
		name = strings.TrimPrefix(name, d)
	}
	return strings.TrimSpace(name)
}

// stripWear removes a trailing exterior qualifier, if any.
func stripWear(name string) string {
	name = strings.TrimSpace(name)
	for _, w := range wearSuffixes {
		if strings.HasSuffix(name, w) {
			return strings.TrimSpace(strings.TrimSuffix(name, w))
		}
	}
	return name
}

// splitSkin splits "Weapon | Skin" into its parts. skin is empty for vanilla items.
func splitSkin(name string) (weapon, skin string) {
	weapon, skin, _ = strings.Cut(name, "|")
	return strings.TrimSpace(weapon), strings.TrimSpace(skin)
}

// isWeapon reports whether the token before "|" names a prefab or item that either
// team can use.
func isWeapon(snap *catalog.Snapshot, stripped string) bool {
	if snap == nil {
		return false
	}
	weaponName, _ := splitSkin(stripWear(stripped))
	for _, token := range snap.Localization.Tokens(weaponName) {
		tag := catalog.Tag(token)
		if prefab, ok := prefabByTag(snap, tag); ok {
			usedBy := prefab.UsedBy
			if !usedBy.Any() {
				usedBy = snap.PrefabUsedBy(prefab.Parents)
			}
			if usedBy.Any() {
				return true
			}
		}
		if item, ok := itemByTag(snap, tag); ok {
			usedBy := item.UsedBy
			if !usedBy.Any() {
				usedBy = snap.PrefabUsedBy(item.Prefabs)
			}
			if usedBy.Any() {
				return true
			}
		}
	}
	return false
}

func prefabByTag(snap *catalog.Snapshot, tag string) (catalog.Prefab, bool) {
	for _, p := range snap.Prefabs {
		if p.NameTag == tag {
			return p, true
		}
	}
	return catalog.Prefab{}, false
}

func itemByTag(snap *catalog.Snapshot, tag string) (catalog.Item, bool) {
	for _, it := range snap.Items {
		if it.NameTag == tag {
			return it, true
		}
	}
	return catalog.Item{}, false
}
