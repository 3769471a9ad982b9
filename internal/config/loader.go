package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PULSE_CONFIG is set
//  3. env (prefix PULSE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PULSE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PULSE_ADDR, PULSE_EMIT_INTERVAL_MS, ...
	// Map env keys like PULSE_EMIT_INTERVAL_MS -> emit_interval_ms; keep
	// underscores to match the koanf tags on the struct.
	envProvider := env.Provider("PULSE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "pulse_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.EmitIntervalMS <= 0:
		return fmt.Errorf("%w: emit_interval_ms must be positive", ErrInvalidConfig)
	case cfg.IdentityMin < 1 || cfg.IdentityMax < cfg.IdentityMin:
		return fmt.Errorf("%w: identity range [%d, %d] is invalid", ErrInvalidConfig, cfg.IdentityMin, cfg.IdentityMax)
	case len(cfg.Actions) == 0:
		return fmt.Errorf("%w: actions must not be empty", ErrInvalidConfig)
	case cfg.SeedAction == "":
		return fmt.Errorf("%w: seed_action must not be empty", ErrInvalidConfig)
	}
	return nil
}
