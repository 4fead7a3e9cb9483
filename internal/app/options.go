package service

import (
	"time"

	"github.com/nexusops/tempo/internal/domain/estimate"
	"github.com/nexusops/tempo/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStoreClient injects a remote store client, replacing the default
// HTTP client built from the base URL.
func WithStoreClient(client StoreClient) Option {
	return func(s *Service) {
		if client != nil {
			s.store = client
		}
	}
}

// WithStoreBaseURL sets the remote store base URL.
func WithStoreBaseURL(url string) Option {
	return func(s *Service) {
		s.storeBaseURL = url
	}
}

// WithRefreshInterval sets the snapshot refresh interval.
func WithRefreshInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.refreshInterval = interval
		}
	}
}

// WithFetchTimeout bounds each store request.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.fetchTimeout = timeout
		}
	}
}

// WithGanttWindow sets the gantt display window hours.
func WithGanttWindow(startHour, endHour int) Option {
	return func(s *Service) {
		if endHour > startHour {
			s.ganttStartHour = startHour
			s.ganttEndHour = endHour
		}
	}
}

// WithSLALeadMinutes sets the audit over-SLA lead threshold.
func WithSLALeadMinutes(minutes int) Option {
	return func(s *Service) {
		if minutes > 0 {
			s.slaLeadMinutes = minutes
		}
	}
}

// WithCalendarMagnitudeCap sets the per-day calendar magnitude ceiling.
func WithCalendarMagnitudeCap(cap int) Option {
	return func(s *Service) {
		if cap > 0 {
			s.magnitudeCap = cap
		}
	}
}

// WithDefaultShiftHours sets the normalizer's fallback interval length.
func WithDefaultShiftHours(hours int) Option {
	return func(s *Service) {
		if hours > 0 {
			s.defaultShiftHours = hours
		}
	}
}

// WithDurationRules replaces the repair duration table.
func WithDurationRules(rules map[string]estimate.Rule) Option {
	return func(s *Service) {
		s.durationRules = rules
	}
}

// WithTeamCertifications sets the team standard-certification matrix.
func WithTeamCertifications(matrix map[string][]string) Option {
	return func(s *Service) {
		s.teamCerts = matrix
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
