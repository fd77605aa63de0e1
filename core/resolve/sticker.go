package resolve

import (
	"regexp"
	"strings"

	"econ-cdn/core/catalog"
)

var (
	stickerName  = regexp.MustCompile(`^Sticker \| (.+)$`)
	patchName    = regexp.MustCompile(`^Patch \| (.+)$`)
	graffitiName = regexp.MustCompile(`^Sealed Graffiti \| ([^(]+)`)
)

// resolveStickerLike resolves stickers, patches and graffiti, which share the
// sticker_kits section and differ in the material field they use.
func (e *Engine) resolveStickerLike(displayName string, kind Kind, large bool) (string, bool) {
	name, ok := stickerLikeName(displayName, kind)
	if !ok {
		return "", false
	}

	for _, token := range e.snap.Localization.Tokens(name) {
		for _, kit := range e.stickerCandidates(catalog.Tag(token), kind) {
			var path string
			if kind == KindPatch {
				path = materialPath(patchDir, kit.PatchMaterial, large)
			} else {
				path = materialPath(stickerDir, kit.StickerMaterial, large)
			}
			if path == "" {
				continue
			}
			if url, ok := e.pathURL(path); ok {
				return url, true
			}
		}
	}
	return "", false
}

// stickerLikeName extracts the localized name after the kind marker. Graffiti names
// lose their trailing tint, e.g. "X-Axes (Tracer Yellow)" becomes "X-Axes".
func stickerLikeName(displayName string, kind Kind) (string, bool) {
	var re *regexp.Regexp
	switch kind {
	case KindSticker:
		re = stickerName
	case KindPatch:
		re = patchName
	case KindGraffiti:
		re = graffitiName
	default:
		return "", false
	}

	m := re.FindStringSubmatch(strings.TrimSpace(displayName))
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	return name, name != ""
}

// stickerCandidates returns the kits tagged with tag in the order they are tried.
// Graffiti requests try kits whose internal name mentions "graffiti" first; ties keep
// catalog declaration order.
func (e *Engine) stickerCandidates(tag string, kind Kind) []catalog.StickerKit {
	var preferred, rest []catalog.StickerKit
	for _, kit := range e.snap.StickerKits {
		if kit.NameTag != tag {
			continue
		}
		if kind == KindGraffiti && strings.Contains(strings.ToLower(kit.Name), "graffiti") {
			preferred = append(preferred, kit)
			continue
		}
		rest = append(rest, kit)
	}
	return append(preferred, rest...)
}
