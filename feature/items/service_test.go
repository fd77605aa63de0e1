package items

import (
	"context"
	"testing"

	"econ-cdn/core/assets"
	"econ-cdn/core/catalog"
	"econ-cdn/core/catalog/catalogtest"
	"econ-cdn/core/cdn"
	"econ-cdn/core/database"
	"econ-cdn/core/resolve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func newTestService(t *testing.T, db *gorm.DB, categories resolve.Categories) *Service {
	t.Helper()
	store := catalog.NewStore(nil, zap.NewNop())
	store.Publish(catalogtest.Snapshot(t))
	return NewService(store, assets.MemorySource(catalogtest.Assets()), cdn.NewBuilder("", nil), categories, db, zap.NewNop())
}

func TestService_ResolveImage(t *testing.T) {
	svc := newTestService(t, nil, resolve.AllCategories())

	resp, err := svc.ResolveImage(context.Background(), "AWP | Redline (Field-Tested)", resolve.PhaseNone)
	require.NoError(t, err)
	assert.Equal(t, "weapon", resp.Kind)
	assert.Contains(t, resp.URL, "weapon_awp_cu_awp_redline")
	assert.Equal(t, uint64(1), resp.CatalogVersion)

	_, err = svc.ResolveImage(context.Background(), "Totally Unknown Item", resolve.PhaseNone)
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestService_NoSnapshot(t *testing.T) {
	svc := NewService(catalog.NewStore(nil, nil), assets.MemorySource{}, cdn.NewBuilder("", nil), resolve.AllCategories(), nil, nil)

	_, err := svc.ResolveImage(context.Background(), "AWP", resolve.PhaseNone)
	assert.ErrorIs(t, err, catalog.ErrNoSnapshot)
	_, err = svc.WeaponImage(9, 0)
	assert.ErrorIs(t, err, catalog.ErrNoSnapshot)
	_, err = svc.MaterialImage(MaterialSticker, "community01/xaxes", false)
	assert.ErrorIs(t, err, catalog.ErrNoSnapshot)
}

func TestService_MaterialAndWeapon(t *testing.T) {
	svc := newTestService(t, nil, resolve.AllCategories())

	resp, err := svc.MaterialImage(MaterialSticker, "community01/xaxes", true)
	require.NoError(t, err)
	assert.Equal(t, "sticker", resp.Kind)
	assert.Contains(t, resp.URL, "/icons/econ/stickers/community01/xaxes_large.")

	resp, err = svc.MaterialImage(MaterialPatch, "case01/patch_dust2", false)
	require.NoError(t, err)
	assert.Contains(t, resp.URL, "/icons/econ/patches/case01/patch_dust2.")

	resp, err = svc.MaterialImage(MaterialStatusIcon, "service_medal_2015", true)
	require.NoError(t, err)
	assert.Equal(t, "status_icon", resp.Kind)

	_, err = svc.MaterialImage(MaterialSticker, "nope", true)
	assert.ErrorIs(t, err, ErrUnresolved)

	resp, err = svc.WeaponImage(9, 259)
	require.NoError(t, err)
	require.NotNil(t, resp.DefIndex)
	assert.Equal(t, 9, *resp.DefIndex)
	assert.Equal(t, 259, *resp.PaintIndex)

	_, err = svc.WeaponImage(9, 279000)
	require.NoError(t, err, "unknown paint index falls back to the vanilla weapon")
}

func TestService_MissLog(t *testing.T) {
	db := setupSQLite(t)
	svc := newTestService(t, db, resolve.AllCategories())
	require.NoError(t, svc.Migrate())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.ResolveImage(ctx, "Totally Unknown Item", resolve.PhaseNone)
		require.ErrorIs(t, err, ErrUnresolved)
	}
	_, err := svc.ResolveImage(ctx, "★ Karambit | Gamma Doppler", resolve.PhaseRuby)
	require.ErrorIs(t, err, ErrUnresolved)

	rows, err := svc.Unresolved(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Totally Unknown Item", rows[0].Name)
	assert.Equal(t, int64(3), rows[0].Hits)
	assert.Equal(t, "generic", rows[0].Kind)

	assert.Equal(t, "★ Karambit | Gamma Doppler", rows[1].Name)
	assert.Equal(t, "ruby", rows[1].Phase)
	assert.Equal(t, "weapon", rows[1].Kind)
	assert.Equal(t, int64(1), rows[1].Hits)
}

func TestService_DisabledCategoryIsNotLogged(t *testing.T) {
	db := setupSQLite(t)
	categories := resolve.AllCategories()
	categories.Stickers = false
	svc := newTestService(t, db, categories)
	require.NoError(t, svc.Migrate())

	_, err := svc.ResolveImage(context.Background(), "Sticker | X-Axes", resolve.PhaseNone)
	assert.ErrorIs(t, err, ErrUnresolved)

	rows, err := svc.Unresolved(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestService_NoDatabase(t *testing.T) {
	svc := newTestService(t, nil, resolve.AllCategories())

	assert.ErrorIs(t, svc.Migrate(), ErrNoDatabase)
	_, err := svc.Unresolved(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNoDatabase)
}
