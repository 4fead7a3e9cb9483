// Package gantt maps canonical assignments onto a fixed daily display
// window as horizontal offset/width pairs.
package gantt

import (
	"github.com/nexusops/tempo/internal/domain/model"
)

// Default display window, a 12-hour span.
const (
	defaultWindowStartHour = 8
	defaultWindowEndHour   = 20

	minutesPerHour = 60.0
	percentScale   = 100.0
)

// Option applies a configuration option to the Projector.
type Option func(*Projector)

// WithWindow sets the display window hours. Ignored unless end > start.
func WithWindow(startHour, endHour int) Option {
	return func(p *Projector) {
		if endHour > startHour {
			p.windowStart = float64(startHour)
			p.windowEnd = float64(endHour)
		}
	}
}

// Projector positions assignment bars inside the display window.
type Projector struct {
	windowStart float64
	windowEnd   float64
}

// New creates a Projector over the standard 08:00-20:00 window.
func New(opts ...Option) *Projector {
	p := &Projector{
		windowStart: defaultWindowStartHour,
		windowEnd:   defaultWindowEndHour,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Bar is the horizontal placement of one assignment. OffsetPercent is
// clamped at zero on the left edge only; a bar running past the right edge
// keeps its full width and reports Overflow instead of being truncated.
type Bar struct {
	AssignmentID  string               `json:"assignment_id"`
	AssetName     string               `json:"asset_name"`
	EngineerName  string               `json:"engineer_name"`
	Type          model.AssignmentType `json:"type"`
	OffsetPercent float64              `json:"offset_percent"`
	WidthPercent  float64              `json:"width_percent"`
	Overflow      bool                 `json:"overflow"`
}

// Place computes the bar for one assignment. The start hour includes
// fractional minutes.
func (p *Projector) Place(a model.CanonicalAssignment) Bar {
	span := p.windowEnd - p.windowStart
	startHour := float64(a.Start.Hour()) + float64(a.Start.Minute())/minutesPerHour

	offset := (startHour - p.windowStart) / span * percentScale
	if offset < 0 {
		offset = 0
	}

	return Bar{
		AssignmentID:  a.ID,
		AssetName:     a.AssetName,
		EngineerName:  a.EngineerName,
		Type:          a.Type,
		OffsetPercent: offset,
		WidthPercent:  a.DurationHours / span * percentScale,
		Overflow:      startHour+a.DurationHours > p.windowEnd,
	}
}

// PlaceAll maps a batch of assignments. Order is preserved.
func (p *Projector) PlaceAll(assignments []model.CanonicalAssignment) []Bar {
	bars := make([]Bar, len(assignments))
	for i, a := range assignments {
		bars[i] = p.Place(a)
	}
	return bars
}
