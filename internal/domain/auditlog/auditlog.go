// Package auditlog derives lifecycle metrics from audit ledger entries and
// filters the log for display.
package auditlog

import (
	"time"

	"github.com/nexusops/tempo/internal/domain/model"
)

const (
	// defaultSLALeadMinutes flags entries whose lead time exceeds the SLA.
	defaultSLALeadMinutes = 120

	millisPerMinute = 60_000
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithSLALeadMinutes sets the over-SLA lead time threshold.
func WithSLALeadMinutes(minutes int) Option {
	return func(c *Calculator) {
		if minutes > 0 {
			c.slaLeadMinutes = minutes
		}
	}
}

// Calculator derives per-entry metrics. The SLA threshold affects display
// flagging only, never state.
type Calculator struct {
	slaLeadMinutes int
}

// New creates a Calculator with the default two-hour SLA threshold.
func New(opts ...Option) *Calculator {
	c := &Calculator{slaLeadMinutes: defaultSLALeadMinutes}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Metrics are the derived lifecycle numbers for one audit entry.
type Metrics struct {
	RepairMinutes int  `json:"repair_minutes"`
	LeadMinutes   int  `json:"lead_minutes"`
	OverSLA       bool `json:"over_sla"`
}

// Metrics derives repair time (actual start to completion) and lead time
// (signal to completion) for an entry.
func (c *Calculator) Metrics(e model.AuditEntry) Metrics {
	lead := MinutesBetween(e.SignalReceivedAt, e.ActualCompletedAt)
	return Metrics{
		RepairMinutes: MinutesBetween(e.ActualStartAt, e.ActualCompletedAt),
		LeadMinutes:   lead,
		OverSLA:       lead > c.slaLeadMinutes,
	}
}

// Record pairs a ledger entry with its derived lifecycle metrics.
type Record struct {
	model.AuditEntry
	Metrics
}

// Records derives metrics for a batch of entries. Order is preserved.
func (c *Calculator) Records(entries []model.AuditEntry) []Record {
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = Record{AuditEntry: e, Metrics: c.Metrics(e)}
	}
	return out
}

// MinutesBetween returns the whole minutes elapsed from a to b. Missing or
// unparsable instants, and b before a, all resolve to zero; the result is
// never negative and never an error.
func MinutesBetween(a, b string) int {
	from, ok := model.ParseTime(a)
	if !ok {
		return 0
	}
	to, ok := model.ParseTime(b)
	if !ok {
		return 0
	}
	diff := to.Sub(from).Milliseconds()
	if diff < 0 {
		return 0
	}
	return int(diff / millisPerMinute)
}

// sortKey parses an entry's timestamp for ordering. Unparsable timestamps
// sort after everything else in the descending result.
func sortKey(e model.AuditEntry) time.Time {
	t, _ := model.ParseTime(e.Timestamp)
	return t
}
