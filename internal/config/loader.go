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
//  2. file (YAML) if TEMPO_CONFIG is set
//  3. env (prefix TEMPO_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("TEMPO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TEMPO_ADDR, TEMPO_STORE_BASE_URL, ...
	// Map env keys like TEMPO_STORE_BASE_URL -> store_base_url (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("TEMPO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "tempo_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.StoreBaseURL == "" {
		return fmt.Errorf("%w: store_base_url must not be empty", ErrInvalidConfig)
	}
	if c.RefreshIntervalSeconds < MinRefreshIntervalSeconds || c.RefreshIntervalSeconds > MaxRefreshIntervalSeconds {
		return fmt.Errorf("%w: refresh_interval_seconds must be in [%d, %d]",
			ErrInvalidConfig, MinRefreshIntervalSeconds, MaxRefreshIntervalSeconds)
	}
	if c.FetchTimeoutSeconds < 1 {
		return fmt.Errorf("%w: fetch_timeout_seconds must be positive", ErrInvalidConfig)
	}
	if c.GanttWindowEndHour <= c.GanttWindowStartHour {
		return fmt.Errorf("%w: gantt window end must be after start", ErrInvalidConfig)
	}
	return nil
}
