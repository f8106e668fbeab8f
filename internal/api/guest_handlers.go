package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"frontdesk/internal/entities"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/service"
)

type GuestHandler struct {
	Service *service.GuestService
}

func NewGuestHandler(svc *service.GuestService) *GuestHandler {
	return &GuestHandler{Service: svc}
}

func (h *GuestHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.Service.List(r.Context())
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

func (h *GuestHandler) GetGuest(w http.ResponseWriter, r *http.Request) {
	guest, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guest)
}

func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req entities.GuestRequest
	if err := decodeAndValidate(r, &req); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	guest, err := h.Service.Create(r.Context(), req)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, guest)
}

func (h *GuestHandler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	var req entities.GuestRequest
	if err := decodeAndValidate(r, &req); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	guest, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guest)
}

func (h *GuestHandler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Guest deleted"})
}
