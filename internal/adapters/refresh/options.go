package refresh

import (
	"time"

	"github.com/nexusops/tempo/internal/domain/normalize"
	"github.com/nexusops/tempo/pkg/logger"
)

// Option applies a configuration option to the Poller.
type Option func(*Poller)

// WithInterval sets the refresh tick interval.
func WithInterval(interval time.Duration) Option {
	return func(p *Poller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// WithFetchTimeout bounds each cycle's store calls.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(p *Poller) {
		if timeout > 0 {
			p.fetchTimeout = timeout
		}
	}
}

// WithNormalizer replaces the assignment normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(p *Poller) {
		if n != nil {
			p.normalizer = n
		}
	}
}

// WithTeamCertifications sets the team standard-certification matrix used
// when recomputing readiness locally.
func WithTeamCertifications(matrix map[string][]string) Option {
	return func(p *Poller) {
		p.teamCerts = matrix
	}
}

// WithLogger sets a custom logger for the poller.
func WithLogger(log logger.Logger) Option {
	return func(p *Poller) {
		if log != nil {
			p.logger = log
		}
	}
}
