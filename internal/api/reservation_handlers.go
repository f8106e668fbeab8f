package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"frontdesk/internal/db"
	"frontdesk/internal/entities"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/service"
	"frontdesk/internal/utils"
)

type ReservationHandler struct {
	Service *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	filter := service.ReservationFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}
	list, err := h.Service.List(r.Context(), filter)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	in, err := parseReservationInput(req)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	res, err := h.Service.Create(r.Context(), in)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.ReservationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	in, err := parseReservationInput(req)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	res, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation deleted"})
}

func (h *ReservationHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req entities.StatusChangeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	res, err := h.Service.ChangeStatus(r.Context(), mux.Vars(r)["id"], db.ReservationStatus(req.Status))
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// QuickCheckIn creates a checked-in reservation for a single room in one step.
// CheckIn defaults to today when omitted.
func (h *ReservationHandler) QuickCheckIn(w http.ResponseWriter, r *http.Request) {
	var req entities.QuickCheckInRequest
	if err := decodeAndValidate(r, &req); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	in := entities.CreateReservationInput{
		GuestID: req.GuestID,
		RoomIDs: []string{req.RoomID},
		Notes:   req.Notes,
	}
	if req.CheckIn != "" {
		checkIn, err := utils.ParseDate(req.CheckIn)
		if err != nil {
			apperr.WriteJSON(w, apperr.NewValidation("checkIn must be a YYYY-MM-DD date"))
			return
		}
		in.CheckIn = checkIn
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		apperr.WriteJSON(w, apperr.NewValidation("checkOut must be a YYYY-MM-DD date"))
		return
	}
	in.CheckOut = checkOut

	res, err := h.Service.QuickCheckIn(r.Context(), in)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
