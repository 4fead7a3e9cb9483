// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/nexusops/tempo/internal/domain/model"
)

// ReadinessDependencies defines the interface for readiness reads.
type ReadinessDependencies interface {
	Readiness(ctx context.Context) []model.ReadinessMetric
}

// ReadinessHandler handles readiness analysis requests.
type ReadinessHandler struct {
	deps ReadinessDependencies
}

// NewReadinessHandler creates a new readiness handler.
func NewReadinessHandler(deps ReadinessDependencies) *ReadinessHandler {
	return &ReadinessHandler{deps: deps}
}

// HandleReadiness handles GET /analysis/readiness requests.
func (h *ReadinessHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, emptyNotNil(h.deps.Readiness(r.Context())))
}
