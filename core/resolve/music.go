package resolve

import (
	"strings"

	"econ-cdn/core/catalog"
)

// resolveMusicKit resolves "Music Kit | Artist, Title".
func (e *Engine) resolveMusicKit(stripped string) (string, bool) {
	name := strings.TrimSpace(strings.TrimPrefix(stripped, prefixMusicKit))
	if name == "" {
		return "", false
	}

	for _, token := range e.snap.Localization.Tokens(name) {
		tag := catalog.Tag(token)
		for _, def := range e.snap.MusicDefinitions {
			if def.NameTag != tag {
				continue
			}
			if url, ok := e.pathURL(inventoryPath(def.ImageInventory)); ok {
				return url, true
			}
		}
	}
	return "", false
}
