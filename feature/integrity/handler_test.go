package integrity

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"econ-cdn/core/assets"
	"econ-cdn/core/catalog/catalogtest"
	"econ-cdn/core/storage/mocks"
	"econ-cdn/feature/items/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, opts Options, db *gorm.DB) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	if opts.Catalog.ItemsGameObject == "" {
		opts.Catalog = catalogtest.Config()
	}
	svc := NewService(mockClient, "test-bucket", opts, db, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient
}

func decode(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, Options{}, nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "checked", body["status"])
	assert.NotEmpty(t, body["missing"])
}

func TestHandleStructureCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t, Options{}, nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "fixed", decode(t, resp.Body)["status"])
}

func TestHandleStructureCheck_BucketError(t *testing.T) {
	app, mockClient := setupTestApp(t, Options{}, nil)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleCatalogCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, Options{}, nil)
	catalogObjects(mockClient, "test-bucket", catalogtest.Config(), "")

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/catalog", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, decode(t, resp.Body)["valid"])
}

func TestHandleCoverageCheck(t *testing.T) {
	app, _ := setupTestApp(t, Options{
		Store:  publishedStore(t),
		Assets: assets.MemorySource(catalogtest.Assets()),
	}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/coverage", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []any{"gold_star_old"}, decode(t, resp.Body)["missing_stickers"])
}

func TestHandleCoverageCheck_IntegrityFailure(t *testing.T) {
	app, mockClient := setupTestApp(t, Options{Assets: assets.MemorySource{}}, nil)
	catalogObjects(mockClient, "test-bucket", catalogtest.Config(), `{"items": {}}`)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/coverage", nil))
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestHandleServerCheck(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.AutoMigrate(&models.UnresolvedItem{}))
	app, _ := setupTestApp(t, Options{}, db)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/server", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, decode(t, resp.Body)["matched"])
}

func TestHandleServerCheck_NoDatabase(t *testing.T) {
	app, _ := setupTestApp(t, Options{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/server", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, Options{Assets: assets.MemorySource{}}, nil)

	// Every check fails fast; the combined report still renders.
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "error", body["structure"].(map[string]any)["status"])
	assert.Equal(t, false, body["catalog"].(map[string]any)["valid"])
	assert.Equal(t, "error", body["coverage"].(map[string]any)["status"])
	assert.Equal(t, "error", body["server"].(map[string]any)["status"])
}
