package catalog

import (
	"context"
	"time"

	"econ-cdn/core/catalog"

	"go.uber.org/zap"
)

// Status describes the published catalog snapshot.
type Status struct {
	Loaded          bool           `json:"loaded"`
	RefreshInterval string         `json:"refresh_interval"`
	Snapshot        *catalog.Stats `json:"snapshot,omitempty"`
}

// Service exposes the catalog store.
type Service struct {
	store    *catalog.Store
	interval time.Duration
	logger   *zap.Logger
}

// NewService creates a new catalog service.
func NewService(store *catalog.Store, interval time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, interval: interval, logger: logger}
}

// Status reports the current snapshot, if any.
func (s *Service) Status() Status {
	status := Status{RefreshInterval: "disabled"}
	if s.interval > 0 {
		status.RefreshInterval = s.interval.String()
	}
	if snap := s.store.Snapshot(); snap != nil {
		stats := snap.Stats()
		status.Loaded = true
		status.Snapshot = &stats
	}
	return status
}

// Refresh reloads the catalog sources and publishes a new snapshot when they changed.
func (s *Service) Refresh(ctx context.Context) (catalog.Stats, error) {
	snap, err := s.store.Refresh(ctx)
	if err != nil {
		return catalog.Stats{}, err
	}
	return snap.Stats(), nil
}

// Run refreshes the catalog periodically until ctx is done.
func (s *Service) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("Periodic catalog refresh disabled")
		return
	}
	s.logger.Info("Periodic catalog refresh enabled", zap.Duration("interval", s.interval))
	s.store.Run(ctx, s.interval)
}
