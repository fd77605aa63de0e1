package checks

import (
	"testing"

	"econ-cdn/core/assets"
	"econ-cdn/core/catalog"
	"econ-cdn/core/catalog/catalogtest"
	"econ-cdn/core/resolve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCoverage(t *testing.T) {
	e := resolve.New(catalogtest.Snapshot(t), assets.MemorySource(catalogtest.Assets()))

	report, err := CheckCoverage(e)
	require.NoError(t, err)
	assert.False(t, report.Complete())
	assert.Equal(t, []string{"gold_star_old"}, report.MissingStickers)
	assert.Empty(t, report.MissingPatches)
	assert.Empty(t, report.MissingMusicKits)
	// five sticker materials, one patch, one music kit
	assert.Equal(t, 7, report.Checked)
}

func TestCheckCoverage_EmptyStore(t *testing.T) {
	e := resolve.New(catalogtest.Snapshot(t), assets.MemorySource{})

	report, err := CheckCoverage(e)
	require.NoError(t, err)
	assert.Len(t, report.MissingStickers, 5)
	assert.Equal(t, []string{"patch_dust2"}, report.MissingPatches)
	assert.Equal(t, []string{"valve_csgo_01"}, report.MissingMusicKits)
}

func TestCheckCoverage_NoSnapshot(t *testing.T) {
	_, err := CheckCoverage(resolve.New(nil, assets.MemorySource{}))
	assert.ErrorIs(t, err, catalog.ErrNoSnapshot)
}
