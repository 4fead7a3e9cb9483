// Package readiness derives per-skill staffing readiness from needed and
// available counts.
package readiness

import (
	"math"
	"sort"
	"strings"

	"github.com/nexusops/tempo/internal/domain/model"
)

const fullyReady = 100.0

// Compute returns the readiness percentage and deficit for one skill.
// Readiness is uncapped above 100; over-provisioning is a visible signal,
// not a clamp. Zero need means fully ready regardless of supply.
func Compute(needed, available float64) (readiness, gap float64) {
	if needed <= 0 {
		readiness = fullyReady
	} else {
		readiness = math.Round(available / needed * fullyReady)
	}
	gap = math.Max(0, needed-available)
	return readiness, gap
}

// Metric builds the full readiness record for one skill.
func Metric(skill string, needed, available float64) model.ReadinessMetric {
	r, gap := Compute(needed, available)
	return model.ReadinessMetric{
		Skill:     skill,
		Needed:    needed,
		Available: available,
		Readiness: r,
		Gap:       gap,
	}
}

// FromRosters recomputes readiness locally from the fleet rosters: needed
// counts assets requiring each certification, available counts engineers
// holding it (case-insensitive). Used as a fallback when the remote
// analysis feed is unavailable. Results are sorted by skill.
func FromRosters(assets []model.Asset, engineers []model.Engineer) []model.ReadinessMetric {
	needs := make(map[string]float64)
	for _, a := range assets {
		for _, cert := range a.RequiredCertifications {
			cert = strings.TrimSpace(cert)
			if cert != "" {
				needs[cert]++
			}
		}
	}

	capabilities := make(map[string]float64)
	for _, e := range engineers {
		for _, cert := range e.Certifications {
			cert = strings.ToLower(strings.TrimSpace(cert))
			if cert != "" {
				capabilities[cert]++
			}
		}
	}

	out := make([]model.ReadinessMetric, 0, len(needs))
	for cert, needed := range needs {
		out = append(out, Metric(cert, needed, capabilities[strings.ToLower(cert)]))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Skill < out[j].Skill })
	return out
}

// TeamDefaults fills in certifications for engineers that carry none,
// using their team's standard set. Engineers with explicit certifications
// are returned unchanged.
func TeamDefaults(engineers []model.Engineer, teamCerts map[string][]string) []model.Engineer {
	if len(teamCerts) == 0 {
		return engineers
	}
	out := make([]model.Engineer, len(engineers))
	copy(out, engineers)
	for i := range out {
		if len(out[i].Certifications) > 0 {
			continue
		}
		if certs, ok := teamCerts[out[i].Team]; ok {
			out[i].Certifications = certs
		}
	}
	return out
}
