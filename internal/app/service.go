// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/nexusops/tempo/internal/adapters/refresh"
	"github.com/nexusops/tempo/internal/adapters/state"
	"github.com/nexusops/tempo/internal/adapters/store"
	"github.com/nexusops/tempo/internal/domain/auditlog"
	"github.com/nexusops/tempo/internal/domain/calendar"
	"github.com/nexusops/tempo/internal/domain/estimate"
	"github.com/nexusops/tempo/internal/domain/gantt"
	"github.com/nexusops/tempo/internal/domain/model"
	"github.com/nexusops/tempo/internal/domain/normalize"
	"github.com/nexusops/tempo/pkg/logger"
)

// StoreClient is the full remote store surface the service depends on:
// the six collection reads the poller consumes plus the write-through
// operations proxied for the API.
type StoreClient interface {
	refresh.Fetcher

	RunScheduler(ctx context.Context) (store.Ack, error)
	CompleteAssignment(ctx context.Context, id string) (store.Ack, error)
	AddAsset(ctx context.Context, payload any) (store.Ack, error)
	DeleteAsset(ctx context.Context, id string) (store.Ack, error)
	AddEngineer(ctx context.Context, payload any) (store.Ack, error)
	DeleteEngineer(ctx context.Context, id string) (store.Ack, error)
	TriggerChaos(ctx context.Context) (store.Ack, error)
	ResetHealth(ctx context.Context) (store.Ack, error)
}

// Service implements the API dependencies for the maintenance view.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     StoreClient
	state     *state.Store
	poller    *refresh.Poller
	estimator *estimate.Estimator
	calendar  *calendar.Projector
	gantt     *gantt.Projector
	audit     *auditlog.Calculator

	// Configuration
	storeBaseURL      string
	refreshInterval   time.Duration
	fetchTimeout      time.Duration
	ganttStartHour    int
	ganttEndHour      int
	slaLeadMinutes    int
	magnitudeCap      int
	defaultShiftHours int
	durationRules     map[string]estimate.Rule
	teamCerts         map[string][]string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a Service with default configuration. The pure domain
// components are built here; Start wires the store, state, and poller.
func New(opts ...Option) *Service {
	s := &Service{}

	for _, opt := range opts {
		opt(s)
	}

	var estimateOpts []estimate.Option
	if len(s.durationRules) > 0 {
		estimateOpts = append(estimateOpts, estimate.WithRules(s.durationRules))
	}
	s.estimator = estimate.New(estimateOpts...)

	var calendarOpts []calendar.Option
	if s.magnitudeCap > 0 {
		calendarOpts = append(calendarOpts, calendar.WithMagnitudeCap(s.magnitudeCap))
	}
	s.calendar = calendar.New(calendarOpts...)

	var ganttOpts []gantt.Option
	if s.ganttEndHour > s.ganttStartHour {
		ganttOpts = append(ganttOpts, gantt.WithWindow(s.ganttStartHour, s.ganttEndHour))
	}
	s.gantt = gantt.New(ganttOpts...)

	var auditOpts []auditlog.Option
	if s.slaLeadMinutes > 0 {
		auditOpts = append(auditOpts, auditlog.WithSLALeadMinutes(s.slaLeadMinutes))
	}
	s.audit = auditlog.New(auditOpts...)

	return s
}

// Start builds the components and launches the refresh poller.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting maintenance view service...")

	if s.store == nil {
		var storeOpts []store.Option
		if s.storeBaseURL != "" {
			storeOpts = append(storeOpts, store.WithBaseURL(s.storeBaseURL))
		}
		if s.fetchTimeout > 0 {
			storeOpts = append(storeOpts, store.WithTimeout(s.fetchTimeout))
		}
		s.store = store.New(storeOpts...)
	}

	s.state = state.New()

	var normalizeOpts []normalize.Option
	if s.defaultShiftHours > 0 {
		normalizeOpts = append(normalizeOpts, normalize.WithDefaultShiftHours(s.defaultShiftHours))
	}

	pollerOpts := []refresh.Option{
		refresh.WithNormalizer(normalize.New(normalizeOpts...)),
		refresh.WithTeamCertifications(s.teamCerts),
	}
	if s.refreshInterval > 0 {
		pollerOpts = append(pollerOpts, refresh.WithInterval(s.refreshInterval))
	}
	if s.fetchTimeout > 0 {
		pollerOpts = append(pollerOpts, refresh.WithFetchTimeout(s.fetchTimeout))
	}
	s.poller = refresh.New(s.store, s.state, pollerOpts...)

	// The poller outlives the caller's context; Stop owns its lifecycle.
	go s.poller.Run(context.Background())

	s.started = true
	s.logger.Info(ctx, "maintenance view service started",
		logger.String("store", s.storeBaseURL),
		logger.Duration("refreshInterval", s.refreshInterval),
	)

	return nil
}

// Stop gracefully shuts down the service. In-flight refresh cycles finish
// on their own and their publishes are discarded by the closed state store.
func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(ctx, "stopping maintenance view service...")

	if err := s.poller.Shutdown(ctx); err != nil {
		s.logger.Warn(ctx, "poller did not stop cleanly", logger.Error(err))
	}
	_ = s.state.Close()

	s.started = false
	s.logger.Info(ctx, "maintenance view service stopped")
}

// snapshot returns the current view, or false before Start.
func (s *Service) snapshot() (state.Snapshot, bool) {
	s.mu.RLock()
	st := s.state
	s.mu.RUnlock()

	if st == nil {
		return state.Snapshot{}, false
	}
	return st.Snapshot(), true
}

// Assets returns the asset fleet from the current snapshot.
func (s *Service) Assets(ctx context.Context) []model.Asset {
	snap, _ := s.snapshot()
	return snap.Assets
}

// Engineers returns the engineer roster from the current snapshot.
func (s *Service) Engineers(ctx context.Context) []model.Engineer {
	snap, _ := s.snapshot()
	return snap.Engineers
}

// Alerts returns active alerts from the current snapshot.
func (s *Service) Alerts(ctx context.Context) []model.Alert {
	snap, _ := s.snapshot()
	return snap.Alerts
}

// Assignments returns the normalized work orders from the current snapshot.
func (s *Service) Assignments(ctx context.Context) []model.CanonicalAssignment {
	snap, _ := s.snapshot()
	return snap.Assignments
}

// Readiness returns per-skill readiness from the current snapshot.
func (s *Service) Readiness(ctx context.Context) []model.ReadinessMetric {
	snap, _ := s.snapshot()
	return snap.Readiness
}

// Calendar projects the current snapshot's assignments onto a month grid.
func (s *Service) Calendar(ctx context.Context, year int, month time.Month) calendar.Month {
	snap, _ := s.snapshot()
	return s.calendar.Project(year, month, snap.Assignments)
}

// Gantt places the current snapshot's assignments in the display window.
func (s *Service) Gantt(ctx context.Context) []gantt.Bar {
	snap, _ := s.snapshot()
	return s.gantt.PlaceAll(snap.Assignments)
}

// Audit filters the ledger and attaches derived metrics to each entry.
func (s *Service) Audit(ctx context.Context, f auditlog.Filter) []auditlog.Record {
	snap, _ := s.snapshot()
	return s.audit.Records(auditlog.Apply(snap.AuditLog, f))
}

// EstimateRepair returns the duration rule for an asset type and the
// projected end for a repair starting at start.
func (s *Service) EstimateRepair(ctx context.Context, assetType string, start time.Time) (estimate.Rule, time.Time) {
	rule := s.estimator.Rule(assetType)
	return rule, s.estimator.EstimateEnd(start, assetType)
}

// RunScheduler asks the store to run its scheduler, then refreshes early.
func (s *Service) RunScheduler(ctx context.Context) (store.Ack, error) {
	return s.writeThrough(ctx, func() (store.Ack, error) {
		return s.store.RunScheduler(ctx)
	})
}

// CompleteAssignment marks a work order complete, then refreshes early.
func (s *Service) CompleteAssignment(ctx context.Context, id string) (store.Ack, error) {
	return s.writeThrough(ctx, func() (store.Ack, error) {
		return s.store.CompleteAssignment(ctx, id)
	})
}

// AddAsset registers a new asset with the store.
func (s *Service) AddAsset(ctx context.Context, asset model.Asset) (store.Ack, error) {
	return s.writeThrough(ctx, func() (store.Ack, error) {
		return s.store.AddAsset(ctx, asset)
	})
}

// DeleteAsset removes an asset by id.
func (s *Service) DeleteAsset(ctx context.Context, id string) (store.Ack, error) {
	return s.writeThrough(ctx, func() (store.Ack, error) {
		return s.store.DeleteAsset(ctx, id)
	})
}

// AddEngineer registers a new engineer with the store.
func (s *Service) AddEngineer(ctx context.Context, engineer model.Engineer) (store.Ack, error) {
	return s.writeThrough(ctx, func() (store.Ack, error) {
		return s.store.AddEngineer(ctx, engineer)
	})
}

// DeleteEngineer removes an engineer by id.
func (s *Service) DeleteEngineer(ctx context.Context, id string) (store.Ack, error) {
	return s.writeThrough(ctx, func() (store.Ack, error) {
		return s.store.DeleteEngineer(ctx, id)
	})
}

// TriggerChaos asks the store to run its chaos simulation.
func (s *Service) TriggerChaos(ctx context.Context) (store.Ack, error) {
	return s.writeThrough(ctx, func() (store.Ack, error) {
		return s.store.TriggerChaos(ctx)
	})
}

// ResetHealth asks the store to restore full fleet health.
func (s *Service) ResetHealth(ctx context.Context) (store.Ack, error) {
	return s.writeThrough(ctx, func() (store.Ack, error) {
		return s.store.ResetHealth(ctx)
	})
}

// writeThrough proxies one mutation to the store. The snapshot is never
// touched directly; a successful write kicks an early refresh cycle so
// the view catches up before the next scheduled tick.
func (s *Service) writeThrough(ctx context.Context, op func() (store.Ack, error)) (store.Ack, error) {
	s.mu.RLock()
	started := s.started
	poller := s.poller
	s.mu.RUnlock()

	if !started {
		return store.Ack{}, ErrNotStarted
	}

	ack, err := op()
	if err != nil {
		return store.Ack{}, err
	}

	poller.Kick()
	return ack, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":                  s.started,
		"refresh_interval_seconds": 0.0,
	}
	if s.refreshInterval > 0 {
		stats["refresh_interval_seconds"] = s.refreshInterval.Seconds()
	}

	if s.state != nil {
		snap := s.state.Snapshot()
		stats["cycle"] = snap.Cycle
		stats["fetched_at"] = snap.FetchedAt
		stats["assets"] = len(snap.Assets)
		stats["engineers"] = len(snap.Engineers)
		stats["alerts"] = len(snap.Alerts)
		stats["assignments"] = len(snap.Assignments)
		stats["audit_entries"] = len(snap.AuditLog)
	}

	return stats
}
