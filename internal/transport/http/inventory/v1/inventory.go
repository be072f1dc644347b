package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/response"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/view"
)

type InventoryService interface {
	Part(ctx context.Context, partID string) (*model.Part, error)
	ListParts(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error)
	AdjustStock(ctx context.Context, partID string, delta int64) (*model.Part, error)
	Status(ctx context.Context) (*model.InventoryStatus, error)
}

type handler struct {
	svc InventoryService
}

func NewInventoryHandler(service InventoryService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/parts", h.ListParts)
	r.Get("/parts/{partID}", h.PartByID)
	r.Post("/parts/{partID}/adjust", h.AdjustStock)
	r.Get("/status", h.Status)

	return r
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	filter := model.PartsFilter{
		IDs:        splitParam(r.URL.Query().Get("id")),
		Categories: splitParam(r.URL.Query().Get("category")),
		Statuses: lo.Map(splitParam(r.URL.Query().Get("status")), func(s string, _ int) model.StockStatus {
			return model.StockStatus(s)
		}),
	}

	parts, err := h.svc.ListParts(r.Context(), filter)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.PartsFromModel(parts))
}

func (h *handler) PartByID(w http.ResponseWriter, r *http.Request) {
	part, err := h.svc.Part(r.Context(), chi.URLParam(r, "partID"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.PartFromModel(part))
}

type adjustStockRequest struct {
	Delta int64 `json:"delta"`
}

func (h *handler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	part, err := h.svc.AdjustStock(r.Context(), chi.URLParam(r, "partID"), req.Delta)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.PartFromModel(part))
}

func (h *handler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.InventoryStatusFromModel(st))
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}

	return lo.FilterMap(strings.Split(raw, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}
