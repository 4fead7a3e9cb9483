// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/nexusops/tempo/internal/adapters/store"
	"github.com/nexusops/tempo/internal/domain/calendar"
	"github.com/nexusops/tempo/internal/domain/estimate"
	"github.com/nexusops/tempo/internal/domain/gantt"
	"github.com/nexusops/tempo/internal/domain/model"
)

// ScheduleDependencies defines the interface for schedule projections and
// scheduler runs.
type ScheduleDependencies interface {
	Calendar(ctx context.Context, year int, month time.Month) calendar.Month
	Gantt(ctx context.Context) []gantt.Bar
	EstimateRepair(ctx context.Context, assetType string, start time.Time) (estimate.Rule, time.Time)
	RunScheduler(ctx context.Context) (store.Ack, error)
}

// ScheduleHandler handles schedule projection and scheduler run requests.
type ScheduleHandler struct {
	deps ScheduleDependencies
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(deps ScheduleDependencies) *ScheduleHandler {
	return &ScheduleHandler{deps: deps}
}

// HandleRun handles POST /schedule/run requests.
func (h *ScheduleHandler) HandleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	ack, err := h.deps.RunScheduler(r.Context())
	writeAck(w, ack, err)
}

// calendarResponse is the month grid plus the optional selected day diary.
type calendarResponse struct {
	calendar.Month
	SelectedDay *selectedDay `json:"selected_day,omitempty"`
}

type selectedDay struct {
	Day         int                         `json:"day"`
	Assignments []model.CanonicalAssignment `json:"assignments"`
}

// HandleCalendar handles GET /schedule/calendar?year=&month=[&day=]
// requests.
func (h *ScheduleHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	monthNum, err := strconv.Atoi(q.Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	month := h.deps.Calendar(r.Context(), year, time.Month(monthNum))
	resp := calendarResponse{Month: month}

	if dayStr := q.Get("day"); dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 1 || day > month.DaysInMonth {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		resp.SelectedDay = &selectedDay{Day: day, Assignments: month.DayAssignments(day)}
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGantt handles GET /schedule/gantt requests.
func (h *ScheduleHandler) HandleGantt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, emptyNotNil(h.deps.Gantt(r.Context())))
}

// estimateResponse carries the duration rule and the projected end.
type estimateResponse struct {
	AssetType     string    `json:"asset_type"`
	BaseMinutes   int       `json:"base_minutes"`
	BufferMinutes int       `json:"buffer_minutes"`
	Start         time.Time `json:"start"`
	EstimatedEnd  time.Time `json:"estimated_end"`
}

// HandleEstimate handles GET /schedule/estimate?asset_type=[&start=]
// requests. The start defaults to the current instant.
func (h *ScheduleHandler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	assetType := q.Get("asset_type")
	if assetType == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	start := time.Now()
	if startStr := q.Get("start"); startStr != "" {
		parsed, ok := model.ParseTime(startStr)
		if !ok {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		start = parsed
	}

	rule, end := h.deps.EstimateRepair(r.Context(), assetType, start)
	writeJSON(w, http.StatusOK, estimateResponse{
		AssetType:     assetType,
		BaseMinutes:   rule.BaseMinutes,
		BufferMinutes: rule.BufferMinutes,
		Start:         start,
		EstimatedEnd:  end,
	})
}
