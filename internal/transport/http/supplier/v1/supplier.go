package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/response"
)

type SupplierProvider interface {
	SupplierByID(ctx context.Context, supplierID string) (*model.Supplier, error)
	List(ctx context.Context, activeOnly bool) ([]model.Supplier, error)
}

type handler struct {
	suppliers SupplierProvider
}

func NewSupplierHandler(suppliers SupplierProvider) *handler {
	return &handler{suppliers: suppliers}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListSuppliers)
	r.Get("/{supplierID}", h.SupplierByID)

	return r
}

type supplierView struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Reliability     float64 `json:"reliability"`
	PriceMultiplier float64 `json:"price_multiplier"`
	DeliveryTime    string  `json:"delivery_time"`
	Status          string  `json:"status"`
}

func toSupplierView(sup *model.Supplier) supplierView {
	return supplierView{
		ID:              sup.ID,
		Name:            sup.Name,
		Reliability:     sup.Reliability,
		PriceMultiplier: sup.PriceMultiplier,
		DeliveryTime:    string(sup.DeliveryTime),
		Status:          string(sup.Status),
	}
}

func (h *handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	suppliers, err := h.suppliers.List(r.Context(), activeOnly)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	views := lo.Map(suppliers, func(sup model.Supplier, _ int) supplierView {
		return toSupplierView(&sup)
	})
	response.JSON(w, r, http.StatusOK, views)
}

func (h *handler) SupplierByID(w http.ResponseWriter, r *http.Request) {
	sup, err := h.suppliers.SupplierByID(r.Context(), chi.URLParam(r, "supplierID"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toSupplierView(sup))
}
