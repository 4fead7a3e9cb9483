// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/nexusops/tempo/internal/domain/auditlog"
)

// AuditDependencies defines the interface for audit ledger reads.
type AuditDependencies interface {
	Audit(ctx context.Context, f auditlog.Filter) []auditlog.Record
}

// AuditHandler handles audit ledger requests.
type AuditHandler struct {
	deps AuditDependencies
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(deps AuditDependencies) *AuditHandler {
	return &AuditHandler{deps: deps}
}

// HandleAudit handles GET /audit?from=&to=&event_type=&engineer= requests.
// All filters are optional and compose by AND.
func (h *AuditHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	filter := auditlog.Filter{
		From:      q.Get("from"),
		To:        q.Get("to"),
		EventType: q.Get("event_type"),
		Engineer:  q.Get("engineer"),
	}

	writeJSON(w, http.StatusOK, emptyNotNil(h.deps.Audit(r.Context(), filter)))
}
