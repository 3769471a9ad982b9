// Package feed contains the background emitter that appends synthetic
// activity events to the table on a fixed interval.
package feed

import (
	"time"

	"github.com/okian/pulse/pkg/logger"
)

// Option applies a configuration option to the Emitter.
type Option func(*Emitter)

// WithInterval sets the time between emitted events.
func WithInterval(interval time.Duration) Option {
	return func(e *Emitter) {
		if interval > 0 {
			e.interval = interval
		}
	}
}

// WithIdentityRange bounds the customer identities drawn by the emitter.
func WithIdentityRange(min, max int) Option {
	return func(e *Emitter) {
		if min > 0 && max >= min {
			e.idMin = min
			e.idMax = max
		}
	}
}

// WithActions sets the label set events are drawn from.
func WithActions(actions []string) Option {
	return func(e *Emitter) {
		if len(actions) > 0 {
			e.actions = actions
		}
	}
}

// WithName sets the emitter name used for its logger.
func WithName(name string) Option {
	return func(e *Emitter) {
		if name != "" {
			e.name = name
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(e *Emitter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock overrides the timestamp source. Used in tests.
func WithClock(clock func() time.Time) Option {
	return func(e *Emitter) {
		if clock != nil {
			e.clock = clock
		}
	}
}
