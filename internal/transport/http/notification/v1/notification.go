package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RollNo21-crypto/reznico-parts/internal/model"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/response"
	"github.com/RollNo21-crypto/reznico-parts/internal/transport/http/view"
)

type NotificationService interface {
	List(ctx context.Context, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type handler struct {
	svc NotificationService
}

func NewNotificationHandler(service NotificationService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListNotifications)
	r.Post("/{notificationID}/read", h.MarkRead)

	return r
}

func (h *handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	list, err := h.svc.List(r.Context(), unreadOnly)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, view.NotificationsFromModel(list))
}

func (h *handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkRead(r.Context(), chi.URLParam(r, "notificationID")); err != nil {
		response.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
