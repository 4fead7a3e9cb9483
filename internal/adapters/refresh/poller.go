// Package refresh drives the periodic fetch-normalize-publish pipeline.
// Cycles are independent and deliberately not coalesced: a slow cycle can
// be overtaken by a later one and the last-resolved result wins at the
// snapshot store.
package refresh

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/nexusops/tempo/internal/adapters/state"
	"github.com/nexusops/tempo/internal/domain/model"
	"github.com/nexusops/tempo/internal/domain/normalize"
	"github.com/nexusops/tempo/internal/domain/readiness"
	"github.com/nexusops/tempo/pkg/logger"
	"github.com/nexusops/tempo/pkg/metrics"
)

// Default poller configuration constants.
const (
	defaultInterval     = 10 * time.Second
	defaultFetchTimeout = 5 * time.Second
)

// Fetcher is the read surface of the remote store the poller consumes.
type Fetcher interface {
	Assets(ctx context.Context) ([]model.Asset, error)
	Engineers(ctx context.Context) ([]model.Engineer, error)
	Alerts(ctx context.Context) ([]model.Alert, error)
	Readiness(ctx context.Context) ([]model.ReadinessMetric, error)
	Assignments(ctx context.Context) ([]model.RawAssignment, error)
	AuditLog(ctx context.Context) ([]model.AuditEntry, error)
}

// Publisher is where finished cycles land.
type Publisher interface {
	Publish(u state.Update) bool
}

// Poller re-runs the full pipeline on a fixed interval.
type Poller struct {
	fetcher    Fetcher
	publisher  Publisher
	normalizer *normalize.Normalizer

	interval     time.Duration
	fetchTimeout time.Duration

	teamCerts map[string][]string

	cycle atomic.Int64

	// Shutdown control
	kick     chan struct{}
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// New creates a Poller with default timing.
func New(fetcher Fetcher, publisher Publisher, opts ...Option) *Poller {
	p := &Poller{
		fetcher:      fetcher,
		publisher:    publisher,
		normalizer:   normalize.New(),
		interval:     defaultInterval,
		fetchTimeout: defaultFetchTimeout,
		kick:         make(chan struct{}, 1),
		shutdown:     make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = logger.Get().Named("refresh")
	}

	return p
}

// Run starts the tick loop until ctx is canceled or Shutdown is called.
// An initial cycle fires immediately so the view is populated before the
// first full interval elapses.
func (p *Poller) Run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	go p.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.shutdown:
			return
		case <-ticker.C:
			// Each tick is its own goroutine; overlapping cycles race to
			// publish and the last one to resolve wins.
			go p.runCycle(ctx)
		case <-p.kick:
			go p.runCycle(ctx)
		}
	}
}

// Kick requests an out-of-band cycle, used after a write so the view
// catches up before the next scheduled tick. Coalesces when one is
// already pending.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Shutdown stops the tick loop. In-flight cycles are not aborted; their
// publishes are discarded by the closed snapshot store.
func (p *Poller) Shutdown(ctx context.Context) error {
	select {
	case <-p.shutdown:
		// Already shut down.
	default:
		close(p.shutdown)
	}

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		p.logger.Warn(ctx, "poller shutdown timed out")
		return ctx.Err()
	}
}

// runCycle performs one fetch-normalize-publish pass. The cycle context is
// detached from the loop context so stopping the timer never cancels work
// already in flight.
func (p *Poller) runCycle(parent context.Context) {
	cycle := p.cycle.Add(1)
	cycleID := uuid.NewString()
	start := time.Now()

	metrics.RecordRefreshCycle()
	metrics.IncRefreshInFlight()
	defer metrics.DecRefreshInFlight()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), p.fetchTimeout)
	defer cancel()

	var (
		wg sync.WaitGroup

		assets       []model.Asset
		engineers    []model.Engineer
		alerts       []model.Alert
		readinessRem []model.ReadinessMetric
		rawOrders    []model.RawAssignment
		auditEntries []model.AuditEntry

		assetsErr, engineersErr, alertsErr, readinessErr, ordersErr, auditErr error
	)

	wg.Add(6)
	go func() { defer wg.Done(); assets, assetsErr = p.fetcher.Assets(ctx) }()
	go func() { defer wg.Done(); engineers, engineersErr = p.fetcher.Engineers(ctx) }()
	go func() { defer wg.Done(); alerts, alertsErr = p.fetcher.Alerts(ctx) }()
	go func() { defer wg.Done(); readinessRem, readinessErr = p.fetcher.Readiness(ctx) }()
	go func() { defer wg.Done(); rawOrders, ordersErr = p.fetcher.Assignments(ctx) }()
	go func() { defer wg.Done(); auditEntries, auditErr = p.fetcher.AuditLog(ctx) }()
	wg.Wait()

	update := state.Update{Cycle: cycle}

	if assetsErr != nil {
		p.reportFetchError(ctx, cycleID, "assets", assetsErr)
	} else {
		update.Assets = &assets
	}
	if engineersErr != nil {
		p.reportFetchError(ctx, cycleID, "engineers", engineersErr)
	} else {
		update.Engineers = &engineers
	}
	if alertsErr != nil {
		p.reportFetchError(ctx, cycleID, "alerts", alertsErr)
	} else {
		update.Alerts = &alerts
	}
	if auditErr != nil {
		p.reportFetchError(ctx, cycleID, "audit", auditErr)
	} else {
		update.AuditLog = &auditEntries
	}

	if ordersErr != nil {
		p.reportFetchError(ctx, cycleID, "assignments", ordersErr)
	} else {
		canonical := p.normalizer.NormalizeAll(rawOrders)
		if assetsErr == nil && engineersErr == nil {
			normalize.ResolveReferences(canonical, assets, engineers)
		}
		recordNormalization(canonical)
		update.Assignments = &canonical
	}

	switch {
	case readinessErr == nil:
		update.Readiness = &readinessRem
	case assetsErr == nil && engineersErr == nil:
		// Remote analysis down; recompute from the rosters we do have.
		p.reportFetchError(ctx, cycleID, "readiness", readinessErr)
		local := readiness.FromRosters(assets, readiness.TeamDefaults(engineers, p.teamCerts))
		update.Readiness = &local
	default:
		p.reportFetchError(ctx, cycleID, "readiness", readinessErr)
	}

	published := p.publisher.Publish(update)
	elapsed := time.Since(start)
	metrics.RecordRefreshCycleDuration(float64(elapsed.Milliseconds()))

	p.logger.Debug(ctx, "refresh cycle finished",
		logger.String("cycle_id", cycleID),
		logger.Int64("cycle", cycle),
		logger.Duration("elapsed", elapsed),
		logger.Bool("published", published),
	)
}

func (p *Poller) reportFetchError(ctx context.Context, cycleID, collection string, err error) {
	metrics.RecordFetchError(collection)
	p.logger.Warn(ctx, "fetch failed, keeping last-known-good data",
		logger.String("cycle_id", cycleID),
		logger.String("collection", collection),
		logger.Error(err),
	)
}

// recordNormalization counts normalization quality metrics from the
// provenance flags.
func recordNormalization(canonical []model.CanonicalAssignment) {
	for _, a := range canonical {
		metrics.RecordAssignmentNormalized()
		if a.Provenance.Has(model.ProvStartDefaulted) {
			metrics.RecordFieldDefaulted("start")
		}
		if a.Provenance.Has(model.ProvEndDefaulted) {
			metrics.RecordFieldDefaulted("end")
		}
		if a.Provenance.Has(model.ProvTypeDefaulted) {
			metrics.RecordFieldDefaulted("type")
		}
		if a.Provenance.Has(model.ProvIDSynthesized) {
			metrics.RecordFieldDefaulted("id")
		}
		if a.Provenance.Has(model.ProvInvertedEnd) {
			metrics.RecordInvertedInterval()
		}
	}
}
