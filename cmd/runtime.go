package cmd

import (
	"fmt"

	"econ-cdn/core/assets"
	"econ-cdn/core/catalog"
	"econ-cdn/core/cdn"
	"econ-cdn/core/config"
	"econ-cdn/core/database"
	"econ-cdn/core/logger"
	"econ-cdn/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the collaborators shared by the commands.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  storage.Client
	store   *catalog.Store
	assets  *assets.StorageSource
	builder *cdn.Builder
	db      *gorm.DB
}

// newRuntime loads the configuration and wires storage, the catalog store and the
// asset source. The database is optional: a failed connection is logged and db
// stays nil.
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	rt := &runtime{
		cfg:     cfg,
		logger:  logg,
		client:  client,
		store:   catalog.NewStore(catalog.NewStorageLoader(client, cfg.Storage.Bucket, cfg.Catalog), logg),
		assets:  assets.NewStorageSource(client, cfg.Storage.Bucket, cfg.Assets, logg),
		builder: cdn.NewBuilder(cfg.Assets.BaseURL, nil),
	}

	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		rt.db = conn
		logg.Info("Connected to miss log database", zap.String("driver", cfg.Database.Driver))
	}

	return rt, nil
}
