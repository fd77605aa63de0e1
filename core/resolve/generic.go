package resolve

import "econ-cdn/core/catalog"

// resolveGeneric resolves cases, keys, passes, tools and anything else defined by an
// item or prefab with an image_inventory. Name matching ignores case.
func (e *Engine) resolveGeneric(displayName string) (string, bool) {
	for _, token := range e.snap.Localization.TokensFold(displayName) {
		tag := catalog.Tag(token)

		for _, item := range e.snap.Items {
			if item.NameTag != tag {
				continue
			}
			image := item.ImageInventory
			if image == "" {
				image = e.snap.PrefabImage(item.Prefabs)
			}
			if url, ok := e.pathURL(inventoryPath(image)); ok {
				return url, true
			}
		}

		// some items, such as case keys, only exist at prefab level
		for _, prefab := range e.snap.Prefabs {
			if prefab.NameTag != tag {
				continue
			}
			image := prefab.ImageInventory
			if image == "" {
				image = e.snap.PrefabImage(prefab.Parents)
			}
			if url, ok := e.pathURL(inventoryPath(image)); ok {
				return url, true
			}
		}
	}
	return "", false
}
