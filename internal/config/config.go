// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and environment vars.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"github.com/nexusops/tempo/internal/domain/estimate"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// StoreBaseURL is the remote fleet store base URL.
	StoreBaseURL string `koanf:"store_base_url"`

	// RefreshIntervalSeconds is the snapshot refresh period.
	RefreshIntervalSeconds int `koanf:"refresh_interval_seconds"`

	// FetchTimeoutSeconds bounds each store request.
	FetchTimeoutSeconds int `koanf:"fetch_timeout_seconds"`

	// GanttWindowStartHour and GanttWindowEndHour bound the daily display
	// window for the gantt projection.
	GanttWindowStartHour int `koanf:"gantt_window_start_hour"`
	GanttWindowEndHour   int `koanf:"gantt_window_end_hour"`

	// SLALeadMinutes flags audit entries whose lead time exceeds the SLA.
	SLALeadMinutes int `koanf:"sla_lead_minutes"`

	// CalendarMagnitudeCap bounds the per-day calendar magnitude.
	CalendarMagnitudeCap int `koanf:"calendar_magnitude_cap"`

	// DefaultShiftHours is the work order interval fallback when neither
	// an end time nor a duration is supplied.
	DefaultShiftHours int `koanf:"default_shift_hours"`

	// DurationRules maps asset types to expected repair durations. Empty
	// keeps the built-in production matrix.
	DurationRules map[string]estimate.Rule `koanf:"duration_rules"`

	// TeamCertifications maps maintenance teams to their standard
	// certification set.
	TeamCertifications map[string][]string `koanf:"team_certifications"`
}

// Refresh interval bounds. Values outside are rejected at load time.
const (
	MinRefreshIntervalSeconds = 1
	MaxRefreshIntervalSeconds = 300
)

// New creates a Config with production defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   ":9090",
		StoreBaseURL:           "http://127.0.0.1:8000",
		RefreshIntervalSeconds: 10,
		FetchTimeoutSeconds:    5,
		GanttWindowStartHour:   8,
		GanttWindowEndHour:     20,
		SLALeadMinutes:         120,
		CalendarMagnitudeCap:   8,
		DefaultShiftHours:      8,
		TeamCertifications:     defaultTeamCertifications(),
	}
}
