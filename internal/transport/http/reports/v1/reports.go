package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/response"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/view"
)

const (
	defaultTopPartsWindow = 30 * 24 * time.Hour
	defaultTopPartsLimit  = 10
)

type MonitorService interface {
	Report(ctx context.Context) (*model.ReorderingReport, error)
}

type AnalyticsService interface {
	TopParts(ctx context.Context, window time.Duration, n int) ([]model.TopPart, error)
	SupplierPerformance(ctx context.Context) ([]model.SupplierPerformance, error)
	CostTrend(ctx context.Context, days int) ([]model.CostTrendPoint, error)
}

type handler struct {
	monitor   MonitorService
	analytics AnalyticsService
}

func NewReportsHandler(monitor MonitorService, analytics AnalyticsService) *handler {
	return &handler{monitor: monitor, analytics: analytics}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/reordering", h.ReorderingReport)
	r.Get("/top-parts", h.TopParts)
	r.Get("/suppliers", h.SupplierPerformance)
	r.Get("/cost-trend", h.CostTrend)

	return r
}

func (h *handler) ReorderingReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.monitor.Report(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.ReorderingReportFromModel(rep))
}

func (h *handler) TopParts(w http.ResponseWriter, r *http.Request) {
	window := defaultTopPartsWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			response.Error(w, r, model.ErrValidation)
			return
		}
		window = d
	}

	limit := defaultTopPartsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(w, r, model.ErrValidation)
			return
		}
		limit = n
	}

	rows, err := h.analytics.TopParts(r.Context(), window, limit)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.TopPartsFromModel(rows))
}

func (h *handler) SupplierPerformance(w http.ResponseWriter, r *http.Request) {
	rows, err := h.analytics.SupplierPerformance(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.SupplierPerformanceFromModel(rows))
}

func (h *handler) CostTrend(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(w, r, model.ErrValidation)
			return
		}
		days = n
	}

	points, err := h.analytics.CostTrend(r.Context(), days)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.CostTrendFromModel(points))
}
