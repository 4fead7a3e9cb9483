// Package state holds the in-memory view of the fleet: the last-known-good
// result of each refresh cycle. Publishing is last-write-wins with no
// ordering guard; a slow cycle's result may overwrite a newer one, which is
// the documented view-state behavior. Publishes after Close are silently
// discarded so in-flight cycles can land harmlessly during shutdown.
package state

import (
	"sync"
	"time"

	"github.com/nexusops/tempo/internal/domain/model"
	"github.com/nexusops/tempo/pkg/metrics"
)

// Snapshot is one consistent view of everything the read path serves.
type Snapshot struct {
	Assets      []model.Asset
	Engineers   []model.Engineer
	Alerts      []model.Alert
	Readiness   []model.ReadinessMetric
	Assignments []model.CanonicalAssignment
	AuditLog    []model.AuditEntry

	FetchedAt time.Time
	Cycle     int64
}

// Update carries the collections one refresh cycle managed to fetch. Nil
// fields leave the previous value in place, so a partially failed cycle
// only advances what it actually has.
type Update struct {
	Cycle int64
	At    time.Time

	Assets      *[]model.Asset
	Engineers   *[]model.Engineer
	Alerts      *[]model.Alert
	Readiness   *[]model.ReadinessMetric
	Assignments *[]model.CanonicalAssignment
	AuditLog    *[]model.AuditEntry
}

// Store is the guarded snapshot cell.
type Store struct {
	mu      sync.RWMutex
	current Snapshot
	closed  bool
	now     func() time.Time
}

// New creates an empty snapshot store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Snapshot returns the current view. Slices are shared and must be treated
// as immutable by callers; every cycle replaces them wholesale.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Publish applies an update. Returns false when the store is closed and
// the update was discarded.
func (s *Store) Publish(u Update) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		metrics.RecordSnapshotDiscarded()
		return false
	}

	if u.Assets != nil {
		s.current.Assets = *u.Assets
		metrics.UpdateAssetCount(len(s.current.Assets))
	}
	if u.Engineers != nil {
		s.current.Engineers = *u.Engineers
		metrics.UpdateEngineerCount(len(s.current.Engineers))
	}
	if u.Alerts != nil {
		s.current.Alerts = *u.Alerts
	}
	if u.Readiness != nil {
		s.current.Readiness = *u.Readiness
	}
	if u.Assignments != nil {
		s.current.Assignments = *u.Assignments
		metrics.UpdateAssignmentCount(len(s.current.Assignments))
	}
	if u.AuditLog != nil {
		s.current.AuditLog = *u.AuditLog
		metrics.UpdateAuditEntryCount(len(s.current.AuditLog))
	}

	s.current.Cycle = u.Cycle
	if u.At.IsZero() {
		s.current.FetchedAt = s.now()
	} else {
		s.current.FetchedAt = u.At
	}
	metrics.UpdateSnapshotLastUnix(s.current.FetchedAt.Unix())

	return true
}

// Close stops accepting publishes. Reads keep returning the final snapshot.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return nil
}

// IsClosed reports whether the store has been closed.
func (s *Store) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
