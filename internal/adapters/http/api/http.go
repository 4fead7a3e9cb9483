// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nexusops/tempo/internal/adapters/store"
	"github.com/nexusops/tempo/internal/domain/auditlog"
	"github.com/nexusops/tempo/internal/domain/calendar"
	"github.com/nexusops/tempo/internal/domain/estimate"
	"github.com/nexusops/tempo/internal/domain/gantt"
	"github.com/nexusops/tempo/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Read operations serve the current snapshot.
	Assets(ctx context.Context) []model.Asset
	Engineers(ctx context.Context) []model.Engineer
	Alerts(ctx context.Context) []model.Alert
	Assignments(ctx context.Context) []model.CanonicalAssignment
	Readiness(ctx context.Context) []model.ReadinessMetric
	Calendar(ctx context.Context, year int, month time.Month) calendar.Month
	Gantt(ctx context.Context) []gantt.Bar
	Audit(ctx context.Context, f auditlog.Filter) []auditlog.Record
	EstimateRepair(ctx context.Context, assetType string, start time.Time) (estimate.Rule, time.Time)

	// Write operations proxy to the remote store.
	RunScheduler(ctx context.Context) (store.Ack, error)
	CompleteAssignment(ctx context.Context, id string) (store.Ack, error)
	AddAsset(ctx context.Context, asset model.Asset) (store.Ack, error)
	DeleteAsset(ctx context.Context, id string) (store.Ack, error)
	AddEngineer(ctx context.Context, engineer model.Engineer) (store.Ack, error)
	DeleteEngineer(ctx context.Context, id string) (store.Ack, error)
	TriggerChaos(ctx context.Context) (store.Ack, error)
	ResetHealth(ctx context.Context) (store.Ack, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	assetsHandler     *AssetsHandler
	engineersHandler  *EngineersHandler
	alertsHandler     *AlertsHandler
	assignHandler     *AssignmentsHandler
	scheduleHandler   *ScheduleHandler
	auditHandler      *AuditHandler
	readinessHandler  *ReadinessHandler
	simulationHandler *SimulationHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		assetsHandler:     NewAssetsHandler(deps),
		engineersHandler:  NewEngineersHandler(deps),
		alertsHandler:     NewAlertsHandler(deps),
		assignHandler:     NewAssignmentsHandler(deps),
		scheduleHandler:   NewScheduleHandler(deps),
		auditHandler:      NewAuditHandler(deps),
		readinessHandler:  NewReadinessHandler(deps),
		simulationHandler: NewSimulationHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/fleet/assets", MetricsMiddleware(s.assetsHandler.HandleAssets, "fleet_assets"))
	mux.HandleFunc("/fleet/assets/", MetricsMiddleware(s.assetsHandler.HandleAssetByID, "fleet_asset"))
	mux.HandleFunc("/fleet/engineers", MetricsMiddleware(s.engineersHandler.HandleEngineers, "fleet_engineers"))
	mux.HandleFunc("/fleet/engineers/", MetricsMiddleware(s.engineersHandler.HandleEngineerByID, "fleet_engineer"))
	mux.HandleFunc("/fleet/alerts", MetricsMiddleware(s.alertsHandler.HandleAlerts, "fleet_alerts"))

	mux.HandleFunc("/assignments", MetricsMiddleware(s.assignHandler.HandleAssignments, "assignments"))
	mux.HandleFunc("/assignments/", MetricsMiddleware(s.assignHandler.HandleComplete, "assignment_complete"))

	mux.HandleFunc("/schedule/run", MetricsMiddleware(s.scheduleHandler.HandleRun, "schedule_run"))
	mux.HandleFunc("/schedule/calendar", MetricsMiddleware(s.scheduleHandler.HandleCalendar, "schedule_calendar"))
	mux.HandleFunc("/schedule/gantt", MetricsMiddleware(s.scheduleHandler.HandleGantt, "schedule_gantt"))
	mux.HandleFunc("/schedule/estimate", MetricsMiddleware(s.scheduleHandler.HandleEstimate, "schedule_estimate"))

	mux.HandleFunc("/audit", MetricsMiddleware(s.auditHandler.HandleAudit, "audit"))
	mux.HandleFunc("/analysis/readiness", MetricsMiddleware(s.readinessHandler.HandleReadiness, "readiness"))

	mux.HandleFunc("/simulation/chaos", MetricsMiddleware(s.simulationHandler.HandleChaos, "simulation_chaos"))
	mux.HandleFunc("/simulation/reset-health", MetricsMiddleware(s.simulationHandler.HandleResetHealth, "simulation_reset"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeAck forwards a store write result, translating upstream failures to
// a bad-gateway response so the caller can tell store errors from ours.
func writeAck(w http.ResponseWriter, ack store.Ack, err error) {
	if err != nil {
		writeError(w, http.StatusBadGateway, "store_error", err)
		return
	}
	writeJSON(w, http.StatusOK, ack)
}
