package items

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"econ-cdn/core/assets"
	"econ-cdn/core/catalog"
	"econ-cdn/core/cdn"
	"econ-cdn/core/resolve"
	"econ-cdn/feature/items/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(svc *Service) *fiber.App {
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHandler_ResolveImage(t *testing.T) {
	app := newTestApp(newTestService(t, nil, resolve.AllCategories()))

	t.Run("Resolved", func(t *testing.T) {
		q := url.Values{"name": {"★ Karambit | Gamma Doppler (Factory New)"}, "phase": {"Emerald"}}
		status, body := get(t, app, "/items/image?"+q.Encode())
		require.Equal(t, fiber.StatusOK, status, string(body))

		var resp models.ImageResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, "weapon", resp.Kind)
		assert.Contains(t, resp.URL, "am_emerald_marbleized")
		assert.Equal(t, "emerald", resp.Phase)
	})

	t.Run("NotFound", func(t *testing.T) {
		status, _ := get(t, app, "/items/image?name=Totally+Unknown+Item")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("MissingName", func(t *testing.T) {
		status, body := get(t, app, "/items/image")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(body), "This field is required")
	})

	t.Run("InvalidPhase", func(t *testing.T) {
		status, body := get(t, app, "/items/image?name=AWP&phase=phase9")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(body), "phase")
	})
}

func TestHandler_Materials(t *testing.T) {
	app := newTestApp(newTestService(t, nil, resolve.AllCategories()))

	tests := []struct {
		name   string
		target string
		status int
		kind   string
	}{
		{"Sticker", "/stickers/community01/xaxes", fiber.StatusOK, "sticker"},
		{"StickerLarge", "/stickers/community01/xaxes?large=true", fiber.StatusOK, "sticker"},
		{"Patch", "/patches/case01/patch_dust2?large=true", fiber.StatusOK, "patch"},
		{"StatusIcon", "/status-icons/service_medal_2015?large=true", fiber.StatusOK, "status_icon"},
		{"StatusIconSmallMissing", "/status-icons/service_medal_2015", fiber.StatusNotFound, ""},
		{"UnknownSticker", "/stickers/nope", fiber.StatusNotFound, ""},
		{"EmptyMaterial", "/stickers/", fiber.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, tt.target)
			require.Equal(t, tt.status, status, string(body))
			if tt.kind == "" {
				return
			}
			var resp models.ImageResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, tt.kind, resp.Kind)
		})
	}
}

func TestHandler_Weapon(t *testing.T) {
	app := newTestApp(newTestService(t, nil, resolve.AllCategories()))

	status, body := get(t, app, "/weapons/9/259")
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.Contains(t, string(body), "weapon_awp_cu_awp_redline")

	status, _ = get(t, app, "/weapons/1/0")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = get(t, app, "/weapons/awp/0")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = get(t, app, "/weapons/-1/0")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandler_NoSnapshot(t *testing.T) {
	svc := NewService(catalog.NewStore(nil, nil), assets.MemorySource{}, cdn.NewBuilder("", nil), resolve.AllCategories(), nil, nil)
	app := newTestApp(svc)

	status, _ := get(t, app, "/items/image?name=AWP")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestHandler_Unresolved(t *testing.T) {
	t.Run("NoDatabase", func(t *testing.T) {
		app := newTestApp(newTestService(t, nil, resolve.AllCategories()))
		status, _ := get(t, app, "/items/unresolved")
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
	})

	t.Run("WithDatabase", func(t *testing.T) {
		svc := newTestService(t, setupSQLite(t), resolve.AllCategories())
		feature := NewFeature(svc)
		app := fiber.New()
		require.NoError(t, feature.Load(app))

		status, _ := get(t, app, "/items/image?name=Nothing+Here")
		require.Equal(t, fiber.StatusNotFound, status)

		status, body := get(t, app, "/items/unresolved?limit=5")
		require.Equal(t, fiber.StatusOK, status)

		var rows []models.UnresolvedItem
		require.NoError(t, json.Unmarshal(body, &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Nothing Here", rows[0].Name)
	})
}

func TestFeature(t *testing.T) {
	feature := NewFeature(newTestService(t, nil, resolve.AllCategories()))

	assert.Equal(t, "items", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
