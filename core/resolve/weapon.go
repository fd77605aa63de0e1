package resolve

import (
	"strings"

	"econ-cdn/core/catalog"
)

// resolveWeapon resolves "Weapon | Skin (Wear)" through the CDN manifest.
func (e *Engine) resolveWeapon(stripped string, phase Phase) (string, bool) {
	weaponName, skinName := splitSkin(stripWear(stripped))

	for _, weaponToken := range e.snap.Localization.Tokens(weaponName) {
		class, ok := e.weaponClass(catalog.Tag(weaponToken))
		if !ok {
			continue
		}

		if skinName == "" {
			if url, ok := e.manifestURL(class); ok {
				return url, true
			}
			continue
		}

		for _, skinToken := range e.snap.Localization.Tokens(skinName) {
			skinTag := catalog.Tag(skinToken)
			for _, kit := range e.snap.PaintKits {
				if kit.DescriptionTag != skinTag || !phase.matches(kit.Name) {
					continue
				}
				if url, ok := e.manifestURL(strings.ToLower(class + "_" + kit.Name)); ok {
					return url, true
				}
			}
		}
	}
	return "", false
}

// weaponClass maps a weapon name tag to its class, preferring the prefab tier and
// falling back to items that have no prefab of their own (special knives).
func (e *Engine) weaponClass(tag string) (string, bool) {
	if prefab, ok := prefabByTag(e.snap, tag); ok {
		if class := prefab.Class(); class != "" {
			return class, true
		}
	}
	if item, ok := itemByTag(e.snap, tag); ok && item.Name != "" {
		return item.Name, true
	}
	return "", false
}
