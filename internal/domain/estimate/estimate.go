// Package estimate maps asset types to expected repair durations.
package estimate

import "time"

// Default fallback rule for asset types absent from the table.
const (
	defaultBaseMinutes   = 60
	defaultBufferMinutes = 15
)

// Rule is the expected repair duration for an asset type.
type Rule struct {
	BaseMinutes   int `json:"base_minutes" koanf:"base_minutes"`
	BufferMinutes int `json:"buffer_minutes" koanf:"buffer_minutes"`
}

// Total returns the full expected duration including buffer.
func (r Rule) Total() time.Duration {
	return time.Duration(r.BaseMinutes+r.BufferMinutes) * time.Minute
}

// defaultRules is the production duration matrix. An unknown type is not a
// failure; it resolves to the default rule.
func defaultRules() map[string]Rule {
	return map[string]Rule{
		"Main Conveyor Line":  {BaseMinutes: 180, BufferMinutes: 30},
		"Packaging Robot":     {BaseMinutes: 90, BufferMinutes: 15},
		"CNC Milling Machine": {BaseMinutes: 120, BufferMinutes: 45},
		"HV Transformer":      {BaseMinutes: 240, BufferMinutes: 60},
		"SCADA Server":        {BaseMinutes: 45, BufferMinutes: 0},
		"Boiler Plant":        {BaseMinutes: 200, BufferMinutes: 30},
	}
}

// Option applies a configuration option to the Estimator.
type Option func(*Estimator)

// WithRules replaces the whole duration table. The map is copied.
func WithRules(rules map[string]Rule) Option {
	return func(e *Estimator) {
		if len(rules) == 0 {
			return
		}
		e.rules = make(map[string]Rule, len(rules))
		for assetType, rule := range rules {
			e.rules[assetType] = rule
		}
	}
}

// WithDefaultRule sets the rule used on table miss.
func WithDefaultRule(rule Rule) Option {
	return func(e *Estimator) {
		if rule.BaseMinutes > 0 || rule.BufferMinutes > 0 {
			e.fallback = rule
		}
	}
}

// Estimator resolves asset types to duration rules via an exact-match table
// injected at construction. Lookups are pure and never fail.
type Estimator struct {
	rules    map[string]Rule
	fallback Rule
}

// New creates an Estimator with the production table and default fallback.
func New(opts ...Option) *Estimator {
	e := &Estimator{
		rules:    defaultRules(),
		fallback: Rule{BaseMinutes: defaultBaseMinutes, BufferMinutes: defaultBufferMinutes},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Rule returns the duration rule for assetType, or the fallback on miss.
func (e *Estimator) Rule(assetType string) Rule {
	if rule, ok := e.rules[assetType]; ok {
		return rule
	}
	return e.fallback
}

// EstimateEnd returns start plus the expected base+buffer duration for
// assetType.
func (e *Estimator) EstimateEnd(start time.Time, assetType string) time.Time {
	return start.Add(e.Rule(assetType).Total())
}
