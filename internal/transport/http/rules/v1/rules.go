package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/response"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/view"
)

type RulesService interface {
	Rule(ctx context.Context, partID string) (*model.ReorderRule, error)
	List(ctx context.Context) ([]model.ReorderRule, error)
	Upsert(ctx context.Context, rule model.ReorderRule) error
	Delete(ctx context.Context, partID string) (bool, error)
}

type handler struct {
	svc RulesService
}

func NewRulesHandler(service RulesService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListRules)
	r.Get("/{partID}", h.RuleByPartID)
	r.Put("/{partID}", h.UpsertRule)
	r.Delete("/{partID}", h.DeleteRule)

	return r
}

func (h *handler) ListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.RulesFromModel(rules))
}

func (h *handler) RuleByPartID(w http.ResponseWriter, r *http.Request) {
	rule, err := h.svc.Rule(r.Context(), chi.URLParam(r, "partID"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.RuleFromModel(rule))
}

func (h *handler) UpsertRule(w http.ResponseWriter, r *http.Request) {
	var req view.Rule
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	rule := req.ToModel()
	// The path is authoritative for the part the rule belongs to.
	rule.PartID = chi.URLParam(r, "partID")

	if err := h.svc.Upsert(r.Context(), rule); err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.RuleFromModel(&rule))
}

func (h *handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	existed, err := h.svc.Delete(r.Context(), chi.URLParam(r, "partID"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	if !existed {
		response.Error(w, r, model.ErrRuleNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
