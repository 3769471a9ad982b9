// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/pulse/internal/adapters/feed"
	repository "github.com/okian/pulse/internal/adapters/repository"
	"github.com/okian/pulse/internal/domain/chart"
	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/internal/domain/types"
	"github.com/okian/pulse/pkg/logger"
	"github.com/okian/pulse/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultEmitInterval    = 5 * time.Second
	defaultIdentityMin     = 1
	defaultIdentityMax     = 1000
	defaultChartTitle      = "Customer activity by category"
	emitterShutdownTimeout = 5 * time.Second
)

// Service owns the event table and the emitter and exposes the read
// operations the HTTP API depends on.
type Service struct {
	mu sync.RWMutex

	// Core components
	table   repository.Store
	emitter *feed.Emitter

	// Configuration
	emitInterval time.Duration
	identityMin  int
	identityMax  int
	actions      []string
	seedAction   string
	chartTitle   string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		emitInterval: defaultEmitInterval,
		identityMin:  defaultIdentityMin,
		identityMax:  defaultIdentityMax,
		actions:      model.DefaultActions(),
		seedAction:   model.ActionStart,
		chartTitle:   defaultChartTitle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the table with its seed record and starts the emitter.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting feed service...")

	seed := model.Event{
		ID:         uuid.New().String(),
		CustomerID: 0,
		Action:     s.seedAction,
		TS:         time.Now(),
	}
	s.table = repository.NewMemTable(ctx, repository.WithSeed(seed))

	s.emitter = feed.NewEmitter(s.table,
		feed.WithInterval(s.emitInterval),
		feed.WithIdentityRange(s.identityMin, s.identityMax),
		feed.WithActions(s.actions),
		feed.WithLogger(s.logger.Named("emitter")),
	)
	go s.emitter.Run(ctx)

	s.started = true
	s.logger.Info(ctx, "feed service started",
		logger.Duration("emitInterval", s.emitInterval),
		logger.Int("identityMin", s.identityMin),
		logger.Int("identityMax", s.identityMax),
		logger.Int("actions", len(s.actions)),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), emitterShutdownTimeout)
	defer cancel()

	s.logger.Info(ctx, "stopping feed service...")
	if err := s.emitter.Shutdown(ctx); err != nil {
		s.logger.Error(ctx, "emitter shutdown failed", logger.Error(err))
	}

	s.started = false
	s.logger.Info(ctx, "feed service stopped")
}

// snapshot guards reads behind the started check. The table lock itself is
// taken inside Store; this only covers service state.
func (s *Service) snapshot(ctx context.Context) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		metrics.RecordErrorByComponent("app", "not_started")
		return nil, ErrNotStarted
	}
	return s.table.Snapshot(ctx), nil
}

// ListRecords returns the full ordered record sequence in wire shape.
func (s *Service) ListRecords(ctx context.Context) ([]types.Record, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, len(events))
	for i, e := range events {
		records[i] = types.Record{
			Timestamp: e.TS.Format(time.RFC3339),
			Identity:  e.CustomerID,
			Category:  e.Action,
		}
	}
	return records, nil
}

// AggregateByAction returns per-action counts in first-seen order.
func (s *Service) AggregateByAction(ctx context.Context) ([]types.ActionCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		metrics.RecordErrorByComponent("app", "not_started")
		return nil, ErrNotStarted
	}
	return s.table.CountByAction(ctx), nil
}

// Chart returns the aggregate rendered as a bar chart figure.
func (s *Service) Chart(ctx context.Context) (chart.Figure, error) {
	counts, err := s.AggregateByAction(ctx)
	if err != nil {
		return chart.Figure{}, err
	}
	return chart.BarFigure(s.chartTitle, counts), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"emitIntervalMs": s.emitInterval.Milliseconds(),
		"identityMin":    s.identityMin,
		"identityMax":    s.identityMax,
		"actions":        len(s.actions),
	}

	if s.started {
		size := s.table.Len(context.Background())
		stats["records"] = size
		metrics.UpdateTableRecords(size)
	}

	return stats
}
