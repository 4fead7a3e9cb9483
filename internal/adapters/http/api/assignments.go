// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/nexusops/tempo/internal/adapters/store"
	"github.com/nexusops/tempo/internal/domain/model"
)

// AssignmentsDependencies defines the interface for work order operations.
type AssignmentsDependencies interface {
	Assignments(ctx context.Context) []model.CanonicalAssignment
	CompleteAssignment(ctx context.Context, id string) (store.Ack, error)
}

// AssignmentsHandler handles work order requests.
type AssignmentsHandler struct {
	deps AssignmentsDependencies
}

// NewAssignmentsHandler creates a new assignments handler.
func NewAssignmentsHandler(deps AssignmentsDependencies) *AssignmentsHandler {
	return &AssignmentsHandler{deps: deps}
}

// HandleAssignments handles GET /assignments requests.
func (h *AssignmentsHandler) HandleAssignments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, emptyNotNil(h.deps.Assignments(r.Context())))
}

// HandleComplete handles PUT /assignments/{id}/complete requests.
func (h *AssignmentsHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/assignments/")
	id, ok := strings.CutSuffix(path, "/complete")
	if !ok || id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	ack, err := h.deps.CompleteAssignment(r.Context(), id)
	writeAck(w, ack, err)
}
