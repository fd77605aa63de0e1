package items

import (
	"context"
	"errors"
	"time"

	"econ-cdn/core/assets"
	"econ-cdn/core/catalog"
	"econ-cdn/core/cdn"
	"econ-cdn/core/metrics"
	"econ-cdn/core/resolve"
	"econ-cdn/feature/items/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrUnresolved reports a lookup that produced no URL.
	ErrUnresolved = errors.New("item image could not be resolved")
	// ErrNoDatabase reports that the miss log is unavailable.
	ErrNoDatabase = errors.New("database not connected")
)

// MaterialKind selects the asset family of a material lookup.
type MaterialKind string

const (
	MaterialSticker    MaterialKind = "sticker"
	MaterialPatch      MaterialKind = "patch"
	MaterialStatusIcon MaterialKind = "status_icon"
)

// Service resolves item images against the current catalog snapshot.
type Service struct {
	store      *catalog.Store
	assets     assets.Source
	builder    *cdn.Builder
	categories resolve.Categories
	db         *gorm.DB
	logger     *zap.Logger
}

// NewService creates a new items service. db may be nil, which disables the miss log.
func NewService(store *catalog.Store, src assets.Source, builder *cdn.Builder, categories resolve.Categories, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:      store,
		assets:     src,
		builder:    builder,
		categories: categories,
		db:         db,
		logger:     logger,
	}
}

// Migrate creates or updates the miss log table.
func (s *Service) Migrate() error {
	if s.db == nil {
		return ErrNoDatabase
	}
	return s.db.AutoMigrate(&models.UnresolvedItem{})
}

// engine binds a resolver to the snapshot current at call time.
func (s *Service) engine() (*resolve.Engine, error) {
	snap := s.store.Snapshot()
	if snap == nil {
		return nil, catalog.ErrNoSnapshot
	}
	return resolve.New(snap, s.assets,
		resolve.WithBuilder(s.builder),
		resolve.WithCategories(s.categories),
	), nil
}

// ResolveImage resolves a display name. Misses are recorded in the miss log.
func (s *Service) ResolveImage(ctx context.Context, name string, phase resolve.Phase) (*models.ImageResponse, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	url, kind, ok := e.Resolve(name, resolve.Options{Phase: phase})
	metrics.ResolutionDuration.WithLabelValues(kind.String()).Observe(time.Since(start).Seconds())

	switch {
	case ok:
		metrics.ResolutionsTotal.WithLabelValues(kind.String(), metrics.OutcomeResolved).Inc()
	case !s.categories.Enabled(kind):
		metrics.ResolutionsTotal.WithLabelValues(kind.String(), metrics.OutcomeDisabled).Inc()
		return nil, ErrUnresolved
	default:
		metrics.ResolutionsTotal.WithLabelValues(kind.String(), metrics.OutcomeMiss).Inc()
		s.recordMiss(ctx, name, phase, kind)
		return nil, ErrUnresolved
	}

	return &models.ImageResponse{
		URL:            url,
		Kind:           kind.String(),
		CatalogVersion: e.Snapshot().Version,
		Name:           name,
		Phase:          string(phase),
	}, nil
}

// MaterialImage resolves a sticker, patch or status icon by material name.
func (s *Service) MaterialImage(kind MaterialKind, material string, large bool) (*models.ImageResponse, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}

	var (
		url string
		ok  bool
	)
	switch kind {
	case MaterialSticker:
		url, ok = e.StickerURL(material, large)
	case MaterialPatch:
		url, ok = e.PatchURL(material, large)
	case MaterialStatusIcon:
		url, ok = e.StatusIconURL(material, large)
	}
	s.count(string(kind), ok)
	if !ok {
		return nil, ErrUnresolved
	}

	return &models.ImageResponse{
		URL:            url,
		Kind:           string(kind),
		CatalogVersion: e.Snapshot().Version,
		Material:       material,
	}, nil
}

// WeaponImage resolves a weapon by definition index and paint kit index.
func (s *Service) WeaponImage(defIndex, paintIndex int) (*models.ImageResponse, error) {
	e, err := s.engine()
	if err != nil {
		return nil, err
	}

	url, ok := e.WeaponURL(defIndex, paintIndex)
	s.count(resolve.KindWeapon.String(), ok)
	if !ok {
		return nil, ErrUnresolved
	}

	return &models.ImageResponse{
		URL:            url,
		Kind:           resolve.KindWeapon.String(),
		CatalogVersion: e.Snapshot().Version,
		DefIndex:       &defIndex,
		PaintIndex:     &paintIndex,
	}, nil
}

// Unresolved returns the most frequent misses first.
func (s *Service) Unresolved(ctx context.Context, limit int) ([]models.UnresolvedItem, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var rows []models.UnresolvedItem
	err := s.db.WithContext(ctx).
		Order("hits DESC").
		Order("last_seen DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *Service) count(kind string, ok bool) {
	outcome := metrics.OutcomeMiss
	if ok {
		outcome = metrics.OutcomeResolved
	}
	metrics.ResolutionsTotal.WithLabelValues(kind, outcome).Inc()
}

// recordMiss upserts a miss log row. Failures are logged, never returned.
func (s *Service) recordMiss(ctx context.Context, name string, phase resolve.Phase, kind resolve.Kind) {
	if s.db == nil {
		return
	}

	now := time.Now()
	row := models.UnresolvedItem{
		Name:      name,
		Phase:     string(phase),
		Kind:      kind.String(),
		Hits:      1,
		FirstSeen: now,
		LastSeen:  now,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}, {Name: "phase"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"hits":      gorm.Expr("hits + 1"),
			"kind":      row.Kind,
			"last_seen": now,
		}),
	}).Create(&row).Error
	if err != nil {
		s.logger.Warn("Failed to record unresolved item", zap.String("name", name), zap.Error(err))
	}
}
