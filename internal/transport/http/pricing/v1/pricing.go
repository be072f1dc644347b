package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/response"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/view"
)

type PricingService interface {
	Quotes(ctx context.Context, partID string) ([]model.PriceQuote, error)
	QuoteFromSupplier(ctx context.Context, partID, supplierID string) (*model.PriceQuote, error)
}

type handler struct {
	svc PricingService
}

func NewPricingHandler(service PricingService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{partID}", h.Quotes)
	r.Get("/{partID}/{supplierID}", h.QuoteFromSupplier)

	return r
}

func (h *handler) Quotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.svc.Quotes(r.Context(), chi.URLParam(r, "partID"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.QuotesFromModel(quotes))
}

func (h *handler) QuoteFromSupplier(w http.ResponseWriter, r *http.Request) {
	quote, err := h.svc.QuoteFromSupplier(r.Context(), chi.URLParam(r, "partID"), chi.URLParam(r, "supplierID"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.QuoteFromModel(quote))
}
