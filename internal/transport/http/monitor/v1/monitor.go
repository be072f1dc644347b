package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/response"
)

type MonitorService interface {
	Start(ctx context.Context)
	Stop()
	IsRunning() bool
	Sweep(ctx context.Context)
}

type handler struct {
	svc MonitorService
}

func NewMonitorHandler(service MonitorService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.MonitorStatus)
	r.Post("/start", h.StartMonitor)
	r.Post("/stop", h.StopMonitor)
	r.Post("/sweep", h.SweepNow)

	return r
}

type monitorStatus struct {
	Running bool `json:"running"`
}

func (h *handler) MonitorStatus(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, monitorStatus{Running: h.svc.IsRunning()})
}

func (h *handler) StartMonitor(w http.ResponseWriter, r *http.Request) {
	// Detached from the request context: the monitor outlives it.
	h.svc.Start(context.WithoutCancel(r.Context()))
	response.JSON(w, r, http.StatusOK, monitorStatus{Running: h.svc.IsRunning()})
}

func (h *handler) StopMonitor(w http.ResponseWriter, r *http.Request) {
	h.svc.Stop()
	response.JSON(w, r, http.StatusOK, monitorStatus{Running: h.svc.IsRunning()})
}

func (h *handler) SweepNow(w http.ResponseWriter, r *http.Request) {
	h.svc.Sweep(r.Context())
	w.WriteHeader(http.StatusAccepted)
}
