package checks

import (
	"context"
	"strings"
	"testing"

	"econ-cdn/core/catalog"
	"econ-cdn/core/catalog/catalogtest"
	"econ-cdn/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func allObjects(cfg catalog.Config) map[string]string {
	return map[string]string{
		cfg.ItemsGameObject:    "1",
		cfg.LocalizationObject: "2",
		cfg.ManifestObject:     "3",
	}
}

func TestCheckCatalog_Valid(t *testing.T) {
	cfg := catalogtest.Config()
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(catalogtest.ObjectLister(allObjects(cfg)))
	catalogtest.ExpectObjects(client, "assets", cfg, "")

	report, err := CheckCatalog(context.Background(), client, "assets", cfg)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Empty(t, report.MissingObjects)
	require.NotNil(t, report.Stats)
	assert.Equal(t, 4, report.Stats.Items)
	assert.Equal(t, 7, report.Stats.StickerKits)
}

func TestCheckCatalog_MissingObjects(t *testing.T) {
	cfg := catalogtest.Config()
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(catalogtest.ObjectLister(map[string]string{
		cfg.ItemsGameObject: "1",
	}))

	report, err := CheckCatalog(context.Background(), client, "assets", cfg)
	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.Equal(t, []string{cfg.LocalizationObject, cfg.ManifestObject}, report.MissingObjects)
	client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckCatalog_IntegrityFailure(t *testing.T) {
	cfg := catalogtest.Config()
	broken := strings.Replace(catalogtest.ItemsGame, `"paint_kits"`, `"paint_kits_removed"`, 1)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(catalogtest.ObjectLister(allObjects(cfg)))
	catalogtest.ExpectObjects(client, "assets", cfg, broken)

	report, err := CheckCatalog(context.Background(), client, "assets", cfg)
	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.Equal(t, catalog.SectionPaintKits, report.Section)
	assert.Contains(t, report.Error, "section is missing")
	assert.Nil(t, report.Stats)
}
