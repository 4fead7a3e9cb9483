// Package model contains the fleet and maintenance domain records passed
// between layers. Raw types mirror the remote store's JSON; canonical types
// are derived per refresh and never persisted.
package model

import (
	"strings"
	"time"
)

// AssignmentType classifies a maintenance work order.
type AssignmentType string

// Known assignment types. Unknown or missing types normalize to Routine.
const (
	TypeCritical    AssignmentType = "CRITICAL"
	TypeRoutine     AssignmentType = "ROUTINE"
	TypeDecayRepair AssignmentType = "DECAY_REPAIR"
)

// Valid reports whether t is one of the known assignment types.
func (t AssignmentType) Valid() bool {
	switch t {
	case TypeCritical, TypeRoutine, TypeDecayRepair:
		return true
	}
	return false
}

// Shift is an engineer's availability window.
type Shift string

// Known shifts.
const (
	ShiftDay   Shift = "Day"
	ShiftSwing Shift = "Swing"
	ShiftNight Shift = "Night"
)

// Asset is an industrial asset in the fleet. Read-only to this core; health
// mutates externally.
type Asset struct {
	ID                     string   `json:"asset_id"`
	Name                   string   `json:"name"`
	Type                   string   `json:"type"`
	HealthScore            float64  `json:"health_score"`
	RiskLevel              int      `json:"risk_level"`
	RequiredCertifications []string `json:"required_certifications"`
}

// SkillMatrix holds an engineer's 1-10 skill ratings.
type SkillMatrix struct {
	RepairSpeed     int `json:"repairSpeed"`
	Diagnostics     int `json:"diagnostics"`
	Troubleshooting int `json:"troubleshooting"`
}

// Engineer is a member of the maintenance roster. Read-only to this core.
type Engineer struct {
	ID             string      `json:"engineer_id"`
	Name           string      `json:"name"`
	Team           string      `json:"team"`
	Certifications []string    `json:"certifications"`
	SkillMatrix    SkillMatrix `json:"skill_matrix"`
	Availability   Shift       `json:"availability"`
	Fatigue        float64     `json:"fatigue"`
}

// Alert is an active fleet alert surfaced by the store.
type Alert struct {
	ID        string `json:"id"`
	Severity  int    `json:"severity"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Active    bool   `json:"active"`
}

// RawAssignment is a work order exactly as the store sends it. EndTime and
// DurationHours are each optional and mutually informative; a zero
// DurationHours counts as absent.
type RawAssignment struct {
	ID            string  `json:"id"`
	AssetName     string  `json:"asset_name"`
	EngineerName  string  `json:"engineer_name"`
	StartDate     string  `json:"start_date"`
	EndTime       string  `json:"end_time"`
	DurationHours float64 `json:"duration_hours"`
	Type          string  `json:"type"`
}

// Provenance records which canonical fields were defaulted or derived
// rather than taken from explicit input.
type Provenance uint8

// Provenance flags.
const (
	ProvStartDefaulted  Provenance = 1 << iota // start missing or unparsable, current instant used
	ProvEndFromDuration                        // end derived from start + duration_hours
	ProvEndDefaulted                           // neither end_time nor duration supplied, shift fallback used
	ProvTypeDefaulted                          // type missing or unknown, ROUTINE used
	ProvIDSynthesized                          // id synthesized from asset name + start
	ProvInvertedEnd                            // explicit end precedes start, duration floored to zero
)

// Has reports whether flag is set.
func (p Provenance) Has(flag Provenance) bool { return p&flag != 0 }

// CanonicalAssignment is the single normalized representation all layout
// math consumes. Invariant: End >= Start implies DurationHours == End-Start
// in hours; when an explicit End precedes Start the literal End is kept,
// DurationHours collapses to zero, and ProvInvertedEnd is set.
type CanonicalAssignment struct {
	ID            string         `json:"id"`
	AssetID       string         `json:"asset_id,omitempty"`
	EngineerID    string         `json:"engineer_id,omitempty"`
	AssetName     string         `json:"asset_name"`
	EngineerName  string         `json:"engineer_name"`
	Start         time.Time      `json:"start"`
	End           time.Time      `json:"end"`
	DurationHours float64        `json:"duration_hours"`
	Type          AssignmentType `json:"type"`
	Provenance    Provenance     `json:"provenance"`
}

// AuditEntry is one record of the store's append-only ledger. Timestamp
// mirrors the completion time and is what filtering and sorting key on.
type AuditEntry struct {
	ID                string `json:"id"`
	EventType         string `json:"event_type"`
	Engineer          string `json:"engineer"`
	Asset             string `json:"asset"`
	SignalReceivedAt  string `json:"signal_received_at"`
	ActualStartAt     string `json:"actual_start_at"`
	ActualCompletedAt string `json:"actual_completed_at"`
	Timestamp         string `json:"timestamp"`
	Severity          string `json:"severity,omitempty"`
	Description       string `json:"description,omitempty"`
}

// ReadinessMetric is a per-skill staffing ratio, recomputed each refresh.
type ReadinessMetric struct {
	Skill     string  `json:"skill"`
	Needed    float64 `json:"needed"`
	Available float64 `json:"available"`
	Readiness float64 `json:"readiness"`
	Gap       float64 `json:"gap"`
}

// timeLayouts are the instant forms the store emits, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses an instant in any of the store's known layouts.
// Returns ok=false for empty or unparsable input.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
