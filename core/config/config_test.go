package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "econ", cfg.Storage.Bucket)
	assert.Equal(t, "catalog/items_game.json", cfg.Catalog.ItemsGameObject)
	assert.Equal(t, 600, cfg.Catalog.RefreshIntervalSeconds)
	assert.Equal(t, 4096, cfg.Assets.CacheSize)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Features.Stickers)
	assert.True(t, cfg.Features.StatusIcons)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	env := "CATALOG_REFRESH_INTERVAL_SECONDS=-1\nFEATURES_GRAFFITI=false\nASSETS_BASE_URL=http://cdn.local/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("CATALOG_REFRESH_INTERVAL_SECONDS")
		os.Unsetenv("FEATURES_GRAFFITI")
		os.Unsetenv("ASSETS_BASE_URL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, -1, cfg.Catalog.RefreshIntervalSeconds)
	assert.Zero(t, cfg.Catalog.RefreshInterval())
	assert.False(t, cfg.Features.Graffiti)
	assert.True(t, cfg.Features.Weapons)
	assert.Equal(t, "http://cdn.local/", cfg.Assets.BaseURL)
}
