// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nexusops/tempo/internal/adapters/store"
	"github.com/nexusops/tempo/internal/domain/model"
)

// AssetsDependencies defines the interface for asset fleet operations.
type AssetsDependencies interface {
	Assets(ctx context.Context) []model.Asset
	AddAsset(ctx context.Context, asset model.Asset) (store.Ack, error)
	DeleteAsset(ctx context.Context, id string) (store.Ack, error)
}

// AssetsHandler handles asset fleet requests.
type AssetsHandler struct {
	deps AssetsDependencies
}

// NewAssetsHandler creates a new assets handler.
func NewAssetsHandler(deps AssetsDependencies) *AssetsHandler {
	return &AssetsHandler{deps: deps}
}

// HandleAssets handles GET and POST /fleet/assets requests.
func (h *AssetsHandler) HandleAssets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, emptyNotNil(h.deps.Assets(r.Context())))
	case http.MethodPost:
		var asset model.Asset
		if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if strings.TrimSpace(asset.Name) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		ack, err := h.deps.AddAsset(r.Context(), asset)
		writeAck(w, ack, err)
	default:
		http.NotFound(w, r)
	}
}

// HandleAssetByID handles DELETE /fleet/assets/{id} requests.
func (h *AssetsHandler) HandleAssetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/fleet/assets/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	ack, err := h.deps.DeleteAsset(r.Context(), id)
	writeAck(w, ack, err)
}

// EngineersDependencies defines the interface for roster operations.
type EngineersDependencies interface {
	Engineers(ctx context.Context) []model.Engineer
	AddEngineer(ctx context.Context, engineer model.Engineer) (store.Ack, error)
	DeleteEngineer(ctx context.Context, id string) (store.Ack, error)
}

// EngineersHandler handles engineer roster requests.
type EngineersHandler struct {
	deps EngineersDependencies
}

// NewEngineersHandler creates a new engineers handler.
func NewEngineersHandler(deps EngineersDependencies) *EngineersHandler {
	return &EngineersHandler{deps: deps}
}

// HandleEngineers handles GET and POST /fleet/engineers requests.
func (h *EngineersHandler) HandleEngineers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, emptyNotNil(h.deps.Engineers(r.Context())))
	case http.MethodPost:
		var engineer model.Engineer
		if err := json.NewDecoder(r.Body).Decode(&engineer); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if strings.TrimSpace(engineer.Name) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		ack, err := h.deps.AddEngineer(r.Context(), engineer)
		writeAck(w, ack, err)
	default:
		http.NotFound(w, r)
	}
}

// HandleEngineerByID handles DELETE /fleet/engineers/{id} requests.
func (h *EngineersHandler) HandleEngineerByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/fleet/engineers/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	ack, err := h.deps.DeleteEngineer(r.Context(), id)
	writeAck(w, ack, err)
}

// AlertsDependencies defines the interface for alert reads.
type AlertsDependencies interface {
	Alerts(ctx context.Context) []model.Alert
}

// AlertsHandler handles alert requests.
type AlertsHandler struct {
	deps AlertsDependencies
}

// NewAlertsHandler creates a new alerts handler.
func NewAlertsHandler(deps AlertsDependencies) *AlertsHandler {
	return &AlertsHandler{deps: deps}
}

// HandleAlerts handles GET /fleet/alerts requests.
func (h *AlertsHandler) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, emptyNotNil(h.deps.Alerts(r.Context())))
}

// emptyNotNil keeps empty collections encoding as [] instead of null.
func emptyNotNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
