package auditlog

import (
	"sort"
	"strings"
	"time"

	"github.com/nexusops/tempo/internal/domain/model"
)

// EventTypeAll is the sentinel event type filter matching every entry.
const EventTypeAll = "ALL"

// endOfDay is the inclusive upper-bound offset applied to the To date.
const endOfDayOffset = 24*60*60*1000 - 1 // 23:59:59.999 in milliseconds

// Filter selects audit entries. All fields are optional and compose by
// logical AND; the zero Filter returns the full log.
type Filter struct {
	From      string // inclusive lower bound date, applied at start of day
	To        string // inclusive upper bound date, applied at 23:59:59.999
	EventType string // exact match unless empty or ALL
	Engineer  string // case-insensitive substring on the engineer name
}

// Apply filters entries and returns them sorted descending by timestamp.
// The input slice is not modified.
func Apply(entries []model.AuditEntry, f Filter) []model.AuditEntry {
	out := make([]model.AuditEntry, 0, len(entries))

	for _, e := range entries {
		if !f.matches(e) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]).After(sortKey(out[j]))
	})

	return out
}

func (f Filter) matches(e model.AuditEntry) bool {
	ts, tsOK := model.ParseTime(e.Timestamp)

	if from, ok := model.ParseTime(f.From); ok {
		dayStart := startOfDay(from)
		if !tsOK || ts.Before(dayStart) {
			return false
		}
	}

	if to, ok := model.ParseTime(f.To); ok {
		dayEnd := startOfDay(to).Add(endOfDayOffset * time.Millisecond)
		if !tsOK || ts.After(dayEnd) {
			return false
		}
	}

	if f.EventType != "" && f.EventType != EventTypeAll && e.EventType != f.EventType {
		return false
	}

	if f.Engineer != "" && !strings.Contains(strings.ToLower(e.Engineer), strings.ToLower(f.Engineer)) {
		return false
	}

	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
