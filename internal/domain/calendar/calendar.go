// Package calendar buckets canonical assignments into day-of-month slots
// for a visible month.
package calendar

import (
	"sort"
	"time"

	"github.com/nexusops/tempo/internal/domain/model"
)

// defaultMagnitudeCap bounds the per-day visual magnitude. Counts beyond
// the cap are not distinguishable at the cap.
const defaultMagnitudeCap = 8

// Option applies a configuration option to the Projector.
type Option func(*Projector)

// WithMagnitudeCap sets the display ceiling for per-day magnitude.
func WithMagnitudeCap(cap int) Option {
	return func(p *Projector) {
		if cap > 0 {
			p.magnitudeCap = cap
		}
	}
}

// Projector computes month grids from canonical assignments.
type Projector struct {
	magnitudeCap int
}

// New creates a Projector with the default magnitude cap.
func New(opts ...Option) *Projector {
	p := &Projector{magnitudeCap: defaultMagnitudeCap}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Day is one calendar slot. Count is the raw number of assignments
// starting that day; Magnitude is the capped visual value.
type Day struct {
	Day       int `json:"day"`
	Count     int `json:"count"`
	Magnitude int `json:"magnitude"`
}

// Month is the projection of a set of assignments onto one visible month.
type Month struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	DaysInMonth  int        `json:"days_in_month"`
	FirstWeekday int        `json:"first_weekday"` // Sunday = 0, used for grid padding
	Days         []Day      `json:"days"`

	byDay map[int][]model.CanonicalAssignment
}

// Project buckets assignments whose start falls inside the target month.
func (p *Projector) Project(year int, month time.Month, assignments []model.CanonicalAssignment) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	m := Month{
		Year:         year,
		Month:        month,
		DaysInMonth:  daysInMonth,
		FirstWeekday: int(first.Weekday()),
		Days:         make([]Day, daysInMonth),
		byDay:        make(map[int][]model.CanonicalAssignment),
	}

	for _, a := range assignments {
		if a.Start.Year() != year || a.Start.Month() != month {
			continue
		}
		day := a.Start.Day()
		m.byDay[day] = append(m.byDay[day], a)
	}

	for day := 1; day <= daysInMonth; day++ {
		count := len(m.byDay[day])
		m.Days[day-1] = Day{
			Day:       day,
			Count:     count,
			Magnitude: min(count, p.magnitudeCap),
		}
	}

	return m
}

// Day returns the slot for a day of the month, ok=false out of range.
func (m Month) Day(day int) (Day, bool) {
	if day < 1 || day > m.DaysInMonth {
		return Day{}, false
	}
	return m.Days[day-1], true
}

// DayAssignments returns the selected day's assignments sorted ascending
// by start. A day with no assignments (or out of range) yields an empty
// slice, not an error.
func (m Month) DayAssignments(day int) []model.CanonicalAssignment {
	bucket := m.byDay[day]
	out := make([]model.CanonicalAssignment, len(bucket))
	copy(out, bucket)
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
