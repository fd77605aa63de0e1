package checks

import (
	"econ-cdn/core/catalog"
	"econ-cdn/core/resolve"
)

// CoverageReport lists catalog entries whose art is missing from the asset store.
type CoverageReport struct {
	Version          uint64   `json:"version"`
	Checked          int      `json:"checked"`
	MissingStickers  []string `json:"missing_stickers"`
	MissingPatches   []string `json:"missing_patches"`
	MissingMusicKits []string `json:"missing_music_kits"`
}

// Complete reports whether every checked entry has its asset.
func (r *CoverageReport) Complete() bool {
	return len(r.MissingStickers) == 0 && len(r.MissingPatches) == 0 && len(r.MissingMusicKits) == 0
}

// CheckCoverage resolves the large art of every sticker kit, patch and music kit of
// the engine's snapshot and reports the ones that have no asset. Entries are named
// by their catalog name.
func CheckCoverage(e *resolve.Engine) (*CoverageReport, error) {
	snap := e.Snapshot()
	if snap == nil {
		return nil, catalog.ErrNoSnapshot
	}

	report := &CoverageReport{
		Version:          snap.Version,
		MissingStickers:  []string{},
		MissingPatches:   []string{},
		MissingMusicKits: []string{},
	}

	for _, kit := range snap.StickerKits {
		if kit.StickerMaterial != "" {
			report.Checked++
			if _, ok := e.StickerURL(kit.StickerMaterial, true); !ok {
				report.MissingStickers = append(report.MissingStickers, kit.Name)
			}
		}
		if kit.PatchMaterial != "" {
			report.Checked++
			if _, ok := e.PatchURL(kit.PatchMaterial, true); !ok {
				report.MissingPatches = append(report.MissingPatches, kit.Name)
			}
		}
	}

	for _, def := range snap.MusicDefinitions {
		if def.ImageInventory == "" {
			continue
		}
		report.Checked++
		if _, ok := e.InventoryURL(def.ImageInventory); !ok {
			report.MissingMusicKits = append(report.MissingMusicKits, def.Name)
		}
	}

	return report, nil
}
