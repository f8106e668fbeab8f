package api

import (
	"net/http"

	"github.com/gorilla/mux"

	apperr "frontdesk/internal/errors"
	"frontdesk/internal/service"
)

type NotificationHandler struct {
	Service *service.NotifyService
}

func NewNotificationHandler(svc *service.NotifyService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListNotifications(r.Context())
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.Service.MarkRead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.MarkAllRead(r.Context()); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "All notifications marked read"})
}

func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteNotification(r.Context(), mux.Vars(r)["id"]); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification deleted"})
}
