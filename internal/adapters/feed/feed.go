// Package feed contains the background emitter that appends synthetic
// activity events to the table on a fixed interval.
package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/pkg/logger"
	"github.com/okian/pulse/pkg/metrics"
)

// Default emitter configuration constants.
const (
	defaultInterval    = 5 * time.Second
	defaultIdentityMin = 1
	defaultIdentityMax = 1000
)

// Appender is where emitted events land.
type Appender interface {
	Append(ctx context.Context, e model.Event)
}

// Emitter is a long-lived worker that appends one synthetic event per tick.
type Emitter struct {
	table    Appender
	interval time.Duration
	idMin    int
	idMax    int
	actions  []string
	name     string
	clock    func() time.Time

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewEmitter creates an emitter with configuration options.
func NewEmitter(table Appender, opts ...Option) *Emitter {
	e := &Emitter{
		table:    table,
		interval: defaultInterval,
		idMin:    defaultIdentityMin,
		idMax:    defaultIdentityMax,
		actions:  model.DefaultActions(),
		name:     "emitter",
		clock:    time.Now,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logger.Get().Named(e.name)
	}
	return e
}

// Run starts the emit loop until ctx is canceled or Shutdown is called.
// The ticker sleep happens outside any table lock.
func (e *Emitter) Run(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	e.logger.Info(ctx, "emitter running",
		logger.Duration("interval", e.interval),
		logger.Int("actions", len(e.actions)),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.shutdown:
			return
		case <-ticker.C:
			metrics.RecordEmitterTick()
			e.emit(ctx)
		}
	}
}

// Shutdown gracefully stops the emitter.
func (e *Emitter) Shutdown(ctx context.Context) error {
	close(e.shutdown)

	select {
	case <-e.done:
		return nil
	case <-ctx.Done():
		e.logger.Warn(ctx, "emitter shutdown timed out")
		return fmt.Errorf("emitter shutdown timed out: %w", ctx.Err())
	}
}

// emit synthesizes one event and appends it. Generation cannot fail.
func (e *Emitter) emit(ctx context.Context) {
	event := model.Event{
		ID:         uuid.New().String(),
		CustomerID: gofakeit.IntRange(e.idMin, e.idMax),
		Action:     e.actions[gofakeit.IntRange(0, len(e.actions)-1)],
		TS:         e.clock(),
	}
	e.table.Append(ctx, event)
	metrics.RecordEventEmitted()

	e.logger.Debug(ctx, "emitted event",
		logger.String("id", event.ID),
		logger.Int("identity", event.CustomerID),
		logger.String("category", event.Action),
	)
}
