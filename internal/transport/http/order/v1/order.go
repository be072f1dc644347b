package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/response"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/view"
)

type OrderService interface {
	Place(ctx context.Context, params model.PlaceOrderParams) (*model.PurchaseOrder, error)
	OrderByID(ctx context.Context, orderID uuid.UUID) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter model.OrdersFilter) ([]model.PurchaseOrder, error)
	Confirm(ctx context.Context, params model.ConfirmOrderParams) (*model.PurchaseOrder, error)
	Receive(ctx context.Context, params model.ReceiveOrderParams) (*model.PurchaseOrder, error)
	Cancel(ctx context.Context, orderID uuid.UUID) (*model.PurchaseOrder, error)
}

type handler struct {
	svc OrderService
}

func NewOrderHandler(service OrderService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.PlaceOrder)
	r.Get("/", h.ListOrders)
	r.Get("/{orderID}", h.OrderByID)
	r.Post("/{orderID}/confirm", h.ConfirmOrder)
	r.Post("/{orderID}/receive", h.ReceiveOrder)
	r.Post("/{orderID}/cancel", h.CancelOrder)

	return r
}

type placeOrderRequest struct {
	PartID         string `json:"part_id"`
	SupplierID     string `json:"supplier_id"`
	Quantity       int64  `json:"quantity"`
	Priority       string `json:"priority,omitempty"`
	ApprovedBy     string `json:"approved_by,omitempty"`
	UnitPriceCents int64  `json:"unit_price_cents,omitempty"`
}

func (h *handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	ord, err := h.svc.Place(r.Context(), model.PlaceOrderParams{
		PartID:         req.PartID,
		SupplierID:     req.SupplierID,
		Quantity:       req.Quantity,
		Type:           model.OrderTypeManual,
		Priority:       model.Priority(req.Priority),
		ApprovedBy:     req.ApprovedBy,
		UnitPriceCents: req.UnitPriceCents,
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, view.OrderFromModel(ord))
}

func (h *handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := model.OrdersFilter{
		PartID: r.URL.Query().Get("part_id"),
		Type:   model.OrderType(r.URL.Query().Get("type")),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		filter.Statuses = lo.Map(strings.Split(raw, ","), func(s string, _ int) model.OrderStatus {
			return model.OrderStatus(strings.TrimSpace(s))
		})
	}

	orders, err := h.svc.List(r.Context(), filter)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.OrdersFromModel(orders))
}

func (h *handler) OrderByID(w http.ResponseWriter, r *http.Request) {
	ordID, err := parseOrderID(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	ord, err := h.svc.OrderByID(r.Context(), ordID)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.OrderFromModel(ord))
}

type confirmOrderRequest struct {
	SupplierReference string     `json:"supplier_reference"`
	ConfirmedDelivery *time.Time `json:"confirmed_delivery,omitempty"`
}

func (h *handler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	ordID, err := parseOrderID(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	var req confirmOrderRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	params := model.ConfirmOrderParams{
		OrderID:           ordID,
		SupplierReference: req.SupplierReference,
	}
	if req.ConfirmedDelivery != nil {
		params.ConfirmedDelivery = *req.ConfirmedDelivery
	}

	ord, err := h.svc.Confirm(r.Context(), params)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.OrderFromModel(ord))
}

type receiveOrderRequest struct {
	ReceivedQuantity int64      `json:"received_quantity"`
	ReceivedAt       *time.Time `json:"received_at,omitempty"`
}

func (h *handler) ReceiveOrder(w http.ResponseWriter, r *http.Request) {
	ordID, err := parseOrderID(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	var req receiveOrderRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	params := model.ReceiveOrderParams{
		OrderID:          ordID,
		ReceivedQuantity: req.ReceivedQuantity,
	}
	if req.ReceivedAt != nil {
		params.ReceivedAt = *req.ReceivedAt
	}

	ord, err := h.svc.Receive(r.Context(), params)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.OrderFromModel(ord))
}

func (h *handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ordID, err := parseOrderID(r)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	ord, err := h.svc.Cancel(r.Context(), ordID)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.OrderFromModel(ord))
}

func parseOrderID(r *http.Request) (uuid.UUID, error) {
	ordID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid order id: %w", model.ErrValidation)
	}

	return ordID, nil
}
