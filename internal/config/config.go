// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"github.com/okian/pulse/internal/domain/model"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// EmitIntervalMS is the time between emitted events in milliseconds.
	EmitIntervalMS int `koanf:"emit_interval_ms"`

	// IdentityMin and IdentityMax bound the customer identities the emitter
	// draws from.
	IdentityMin int `koanf:"identity_min"`
	IdentityMax int `koanf:"identity_max"`

	// Actions is the label set the emitter draws from.
	Actions []string `koanf:"actions"`

	// SeedAction labels the single record the table is created with.
	SeedAction string `koanf:"seed_action"`

	// ChartTitle is the title on the /plot figure.
	ChartTitle string `koanf:"chart_title"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		EmitIntervalMS: 5000,
		IdentityMin:    1,
		IdentityMax:    1000,
		Actions:        model.DefaultActions(),
		SeedAction:     model.ActionStart,
		ChartTitle:     "Customer activity by category",
	}
}
