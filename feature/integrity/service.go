package integrity

import (
	"context"
	"errors"
	"path"

	"econ-cdn/core/assets"
	"econ-cdn/core/catalog"
	"econ-cdn/core/resolve"
	"econ-cdn/core/storage"
	"econ-cdn/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by CheckServer when no database is connected.
var ErrNoDatabase = errors.New("database not connected")

// Options wires the catalog and asset settings into the service.
type Options struct {
	Catalog     catalog.Config
	AssetPrefix string
	// Store provides the published snapshot for the coverage check. When it is nil
	// or empty, a snapshot is loaded from the bucket for the check only.
	Store *catalog.Store
	// Assets defaults to a StorageSource over the bucket.
	Assets assets.Source
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	opts   Options
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, opts Options, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Assets == nil {
		opts.Assets = assets.NewStorageSource(client, bucket, assets.Config{Prefix: opts.AssetPrefix}, logger)
	}
	return &Service{
		client: client,
		bucket: bucket,
		opts:   opts,
		db:     db,
		logger: logger,
	}
}

// Folders returns the folders the structure check looks for.
func (s *Service) Folders() []string {
	return checks.Folders(s.opts.AssetPrefix, path.Dir(s.opts.Catalog.ItemsGameObject))
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.Folders())
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckCatalog verifies the catalog objects and that they normalize.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	return checks.CheckCatalog(ctx, s.client, s.bucket, s.opts.Catalog)
}

// CheckCoverage reports catalog entries whose art is missing.
func (s *Service) CheckCoverage(ctx context.Context) (*checks.CoverageReport, error) {
	var snap *catalog.Snapshot
	if s.opts.Store != nil {
		snap = s.opts.Store.Snapshot()
	}
	if snap == nil {
		s.logger.Info("No published catalog snapshot, loading one for the coverage check")
		src, err := catalog.NewStorageLoader(s.client, s.bucket, s.opts.Catalog).Load(ctx)
		if err != nil {
			return nil, err
		}
		if snap, err = catalog.Normalize(src); err != nil {
			return nil, err
		}
	}
	return checks.CheckCoverage(resolve.New(snap, s.opts.Assets))
}

// CheckServer validates the database schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckServerIntegrity(s.db)
}
