package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"econ-cdn/core/catalog"
	"econ-cdn/core/catalog/catalogtest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureLoader struct {
	t   *testing.T
	src *catalog.Sources
}

func (f fixtureLoader) Load(context.Context) (catalog.Sources, error) {
	if f.src != nil {
		return *f.src, nil
	}
	return catalogtest.Sources(f.t), nil
}

func do(t *testing.T, app *fiber.App, method, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestFeature_StatusAndRefresh(t *testing.T) {
	store := catalog.NewStore(fixtureLoader{t: t}, nil)
	feature := NewFeature(NewService(store, 10*time.Minute, nil))
	assert.Equal(t, "catalog", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	status, body := do(t, app, "GET", "/catalog")
	require.Equal(t, fiber.StatusOK, status)
	var st Status
	require.NoError(t, json.Unmarshal(body, &st))
	assert.False(t, st.Loaded)
	assert.Equal(t, "10m0s", st.RefreshInterval)

	status, body = do(t, app, "POST", "/catalog/refresh")
	require.Equal(t, fiber.StatusOK, status, string(body))
	var stats catalog.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, uint64(1), stats.Version)
	assert.Equal(t, 4, stats.Items)

	status, body = do(t, app, "GET", "/catalog")
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &st))
	assert.True(t, st.Loaded)
	require.NotNil(t, st.Snapshot)
	assert.Equal(t, uint64(1), st.Snapshot.Version)
}

func TestHandler_RefreshIntegrityFailure(t *testing.T) {
	store := catalog.NewStore(fixtureLoader{t: t, src: &catalog.Sources{}}, nil)
	app := fiber.New()
	NewHandler(NewService(store, 0, nil)).RegisterRoutes(app)

	status, body := do(t, app, "POST", "/catalog/refresh")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, string(body), "catalog integrity")
}

func TestService_RunDisabled(t *testing.T) {
	svc := NewService(catalog.NewStore(fixtureLoader{t: t}, nil), 0, nil)
	assert.Equal(t, "disabled", svc.Status().RefreshInterval)

	done := make(chan struct{})
	go func() {
		svc.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return immediately when refresh is disabled")
	}
}
