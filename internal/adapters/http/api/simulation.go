// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/nexusops/tempo/internal/adapters/store"
)

// SimulationDependencies defines the interface for chaos simulation
// operations.
type SimulationDependencies interface {
	TriggerChaos(ctx context.Context) (store.Ack, error)
	ResetHealth(ctx context.Context) (store.Ack, error)
}

// SimulationHandler handles chaos simulation requests.
type SimulationHandler struct {
	deps SimulationDependencies
}

// NewSimulationHandler creates a new simulation handler.
func NewSimulationHandler(deps SimulationDependencies) *SimulationHandler {
	return &SimulationHandler{deps: deps}
}

// HandleChaos handles POST /simulation/chaos requests.
func (h *SimulationHandler) HandleChaos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	ack, err := h.deps.TriggerChaos(r.Context())
	writeAck(w, ack, err)
}

// HandleResetHealth handles POST /simulation/reset-health requests.
func (h *SimulationHandler) HandleResetHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	ack, err := h.deps.ResetHealth(r.Context())
	writeAck(w, ack, err)
}
