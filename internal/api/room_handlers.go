package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"frontdesk/internal/db"
	"frontdesk/internal/entities"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/service"
)

type RoomHandler struct {
	Service *service.RoomService
}

func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Service.List(r.Context())
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req entities.RoomRequest
	if err := decodeAndValidate(r, &req); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	room, err := h.Service.Create(r.Context(), req)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req entities.RoomRequest
	if err := decodeAndValidate(r, &req); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	room, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Room deleted"})
}

// SetRoomStatus is the housekeeping override: cleaning done, maintenance
// toggles, manual check-out of a room.
func (h *RoomHandler) SetRoomStatus(w http.ResponseWriter, r *http.Request) {
	var req entities.RoomStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	room, err := h.Service.SetStatus(r.Context(), mux.Vars(r)["id"], db.RoomStatus(req.Status))
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}
