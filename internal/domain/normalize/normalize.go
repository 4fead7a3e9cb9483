// Package normalize converts raw assignment records into canonical time
// intervals. Every malformed field degrades to a defined default; a single
// bad record never fails a batch.
package normalize

import (
	"time"

	"github.com/nexusops/tempo/internal/domain/model"
)

// Fallbacks applied when raw fields are absent.
const (
	defaultShiftHours  = 8
	unknownAssetName   = "Unknown Asset"
	unassignedEngineer = "Unassigned"
)

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithClock sets the time source used when a start date is missing.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// WithDefaultShiftHours sets the fallback interval length when neither an
// end time nor a duration is supplied.
func WithDefaultShiftHours(hours int) Option {
	return func(n *Normalizer) {
		if hours > 0 {
			n.defaultShift = time.Duration(hours) * time.Hour
		}
	}
}

// Normalizer derives canonical assignments from raw store records.
type Normalizer struct {
	now          func() time.Time
	defaultShift time.Duration
}

// New creates a Normalizer with the wall clock and the standard shift
// fallback.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		now:          time.Now,
		defaultShift: defaultShiftHours * time.Hour,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize produces the canonical interval for one raw record.
//
// End resolution priority: explicit end_time, then start + duration_hours,
// then start + default shift. DurationHours is always recomputed from the
// interval and floored at zero; an explicit end before start is preserved
// literally and flagged with ProvInvertedEnd rather than re-derived.
func (n *Normalizer) Normalize(raw model.RawAssignment) model.CanonicalAssignment {
	var prov model.Provenance

	start, ok := model.ParseTime(raw.StartDate)
	if !ok {
		start = n.now()
		prov |= model.ProvStartDefaulted
	}

	end, explicitEnd := model.ParseTime(raw.EndTime)
	if !explicitEnd {
		if raw.DurationHours != 0 {
			end = start.Add(time.Duration(raw.DurationHours * float64(time.Hour)))
			prov |= model.ProvEndFromDuration
		} else {
			end = start.Add(n.defaultShift)
			prov |= model.ProvEndDefaulted
		}
	}

	duration := end.Sub(start).Hours()
	if duration < 0 {
		duration = 0
		prov |= model.ProvInvertedEnd
	}

	id := raw.ID
	if id == "" {
		id = raw.AssetName + "-" + start.Format(time.RFC3339)
		prov |= model.ProvIDSynthesized
	}

	assignmentType := model.AssignmentType(raw.Type)
	if !assignmentType.Valid() {
		assignmentType = model.TypeRoutine
		prov |= model.ProvTypeDefaulted
	}

	assetName := raw.AssetName
	if assetName == "" {
		assetName = unknownAssetName
	}
	engineerName := raw.EngineerName
	if engineerName == "" {
		engineerName = unassignedEngineer
	}

	return model.CanonicalAssignment{
		ID:            id,
		AssetName:     assetName,
		EngineerName:  engineerName,
		Start:         start,
		End:           end,
		DurationHours: duration,
		Type:          assignmentType,
		Provenance:    prov,
	}
}

// NormalizeAll maps a batch of raw records. Order is preserved.
func (n *Normalizer) NormalizeAll(raws []model.RawAssignment) []model.CanonicalAssignment {
	out := make([]model.CanonicalAssignment, len(raws))
	for i, raw := range raws {
		out[i] = n.Normalize(raw)
	}
	return out
}

// ResolveReferences attaches asset and engineer ids to assignments whose
// display name matches exactly one roster record. Ambiguous or unknown
// names keep the name-only join.
func ResolveReferences(assignments []model.CanonicalAssignment, assets []model.Asset, engineers []model.Engineer) {
	assetIDs := uniqueByName(len(assets), func(i int) (string, string) { return assets[i].Name, assets[i].ID })
	engineerIDs := uniqueByName(len(engineers), func(i int) (string, string) { return engineers[i].Name, engineers[i].ID })

	for i := range assignments {
		if id, ok := assetIDs[assignments[i].AssetName]; ok {
			assignments[i].AssetID = id
		}
		if id, ok := engineerIDs[assignments[i].EngineerName]; ok {
			assignments[i].EngineerID = id
		}
	}
}

// uniqueByName builds a name -> id index dropping names shared by more
// than one record.
func uniqueByName(n int, at func(i int) (name, id string)) map[string]string {
	ids := make(map[string]string, n)
	dupes := make(map[string]bool)
	for i := 0; i < n; i++ {
		name, id := at(i)
		if name == "" {
			continue
		}
		if _, seen := ids[name]; seen {
			dupes[name] = true
			continue
		}
		ids[name] = id
	}
	for name := range dupes {
		delete(ids, name)
	}
	return ids
}
