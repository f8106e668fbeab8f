package api

import (
	"encoding/json"
	"net/http"

	"frontdesk/internal/db"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/service"
)

type ProfileHandler struct {
	Service *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.Get(r.Context())
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req db.StaffProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.WriteJSON(w, apperr.NewValidation("invalid request body"))
		return
	}
	profile, err := h.Service.Update(r.Context(), req)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
