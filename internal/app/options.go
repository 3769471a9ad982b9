package service

import (
	"time"

	"github.com/okian/pulse/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithEmitInterval sets the time between emitted events.
func WithEmitInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.emitInterval = interval
		}
	}
}

// WithIdentityRange bounds the customer identities drawn by the emitter.
func WithIdentityRange(min, max int) Option {
	return func(s *Service) {
		if min > 0 && max >= min {
			s.identityMin = min
			s.identityMax = max
		}
	}
}

// WithActions sets the label set events are drawn from.
func WithActions(actions []string) Option {
	return func(s *Service) {
		if len(actions) > 0 {
			s.actions = actions
		}
	}
}

// WithSeedAction sets the label of the single seed record.
func WithSeedAction(action string) Option {
	return func(s *Service) {
		if action != "" {
			s.seedAction = action
		}
	}
}

// WithChartTitle sets the title on the /plot figure.
func WithChartTitle(title string) Option {
	return func(s *Service) {
		if title != "" {
			s.chartTitle = title
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
