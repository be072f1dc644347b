package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	usagesvc "github.com/RollNo21-crypto/reznico-parts/internal/service/usage"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/response"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/view"
)

type UsageService interface {
	RecordServiceUsage(ctx context.Context, params usagesvc.RecordUsageParams) (*usagesvc.RecordUsageResult, error)
	UsageByServiceID(ctx context.Context, serviceID string) (*model.UsageRecord, error)
	InvoiceForService(ctx context.Context, serviceID string) (*model.Invoice, error)
	WarrantiesForService(ctx context.Context, serviceID string, now time.Time) ([]model.WarrantyItem, error)
}

type handler struct {
	svc UsageService
}

func NewUsageHandler(service UsageService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.RecordUsage)
	r.Get("/{serviceID}", h.UsageByServiceID)
	r.Get("/{serviceID}/invoice", h.InvoiceForService)
	r.Get("/{serviceID}/warranties", h.WarrantiesForService)

	return r
}

type recordUsageRequest struct {
	ServiceID      string           `json:"service_id"`
	CustomerID     string           `json:"customer_id"`
	Vehicle        view.VehicleInfo `json:"vehicle"`
	Lines          []view.UsageLine `json:"lines"`
	LaborCostCents int64            `json:"labor_cost_cents"`
}

type recordUsageResponse struct {
	Usage   view.UsageRecord `json:"usage"`
	Invoice view.Invoice     `json:"invoice"`
}

func (h *handler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	var req recordUsageRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	res, err := h.svc.RecordServiceUsage(r.Context(), usagesvc.RecordUsageParams{
		ServiceID:  req.ServiceID,
		CustomerID: req.CustomerID,
		Vehicle:    req.Vehicle.ToModel(),
		Lines: lo.Map(req.Lines, func(l view.UsageLine, _ int) model.UsageLine {
			return l.ToModel()
		}),
		LaborCostCents: req.LaborCostCents,
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, recordUsageResponse{
		Usage:   view.UsageRecordFromModel(&res.Usage),
		Invoice: view.InvoiceFromModel(&res.Invoice),
	})
}

func (h *handler) UsageByServiceID(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.UsageByServiceID(r.Context(), chi.URLParam(r, "serviceID"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.UsageRecordFromModel(rec))
}

func (h *handler) InvoiceForService(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.InvoiceForService(r.Context(), chi.URLParam(r, "serviceID"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.InvoiceFromModel(inv))
}

func (h *handler) WarrantiesForService(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.WarrantiesForService(r.Context(), chi.URLParam(r, "serviceID"), time.Now())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.WarrantiesFromModel(items))
}
