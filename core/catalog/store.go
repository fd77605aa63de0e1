package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"econ-cdn/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Loader fetches the raw sources of the current catalog generation.
type Loader interface {
	Load(ctx context.Context) (Sources, error)
}

// Store publishes catalog snapshots. Readers never block on a refresh.
type Store struct {
	loader  Loader
	logger  *zap.Logger
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	sf      singleflight.Group
}

// NewStore creates a store with no snapshot published.
func NewStore(loader Loader, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{loader: loader, logger: logger}
}

// Snapshot returns the current snapshot, or nil before the first publication.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Publish stamps snap with the next version and makes it current.
// snap must not be shared with another store or published twice.
func (s *Store) Publish(snap *Snapshot) *Snapshot {
	snap.Version = s.version.Add(1)
	s.current.Store(snap)
	metrics.CatalogVersion.Set(float64(snap.Version))
	return snap
}

// Refresh loads, normalizes and publishes a new snapshot.
// Concurrent calls share one load. When the loader reports ErrNotModified and a
// snapshot is already published, that snapshot is returned unchanged.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	result, err, _ := s.sf.Do("refresh", func() (interface{}, error) {
		start := time.Now()

		src, err := s.loader.Load(ctx)
		if errors.Is(err, ErrNotModified) {
			if cur := s.current.Load(); cur != nil {
				metrics.CatalogRefreshes.WithLabelValues(metrics.OutcomeUnchanged).Inc()
				s.logger.Debug("Catalog unchanged", zap.Uint64("version", cur.Version))
				return cur, nil
			}
			src, err = s.forceLoad(ctx)
		}
		if err != nil {
			metrics.CatalogRefreshes.WithLabelValues(metrics.OutcomeError).Inc()
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}

		snap, err := Normalize(src)
		if err != nil {
			metrics.CatalogRefreshes.WithLabelValues(metrics.OutcomeError).Inc()
			return nil, err
		}

		s.Publish(snap)
		metrics.CatalogRefreshes.WithLabelValues(metrics.OutcomePublished).Inc()
		s.logger.Info("Catalog snapshot published",
			zap.Uint64("version", snap.Version),
			zap.Int("items", len(snap.Items)),
			zap.Int("paint_kits", len(snap.PaintKits)),
			zap.Int("sticker_kits", len(snap.StickerKits)),
			zap.Int("manifest_entries", len(snap.Manifest)),
			zap.Duration("took", time.Since(start)),
		)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// forceLoad retries a load that reported ErrNotModified while nothing is published.
func (s *Store) forceLoad(ctx context.Context) (Sources, error) {
	if f, ok := s.loader.(interface{ Reset() }); ok {
		f.Reset()
	}
	return s.loader.Load(ctx)
}

// Run refreshes the catalog every interval until ctx is done.
// A non-positive interval disables periodic refresh.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil {
				s.logger.Warn("Catalog refresh failed, keeping current snapshot", zap.Error(err))
			}
		}
	}
}
