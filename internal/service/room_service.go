package service

import (
	"context"
	"fmt"

	"frontdesk/internal/db"
	"frontdesk/internal/entities"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/store"
)

// RoomService covers room CRUD and direct housekeeping status edits.
type RoomService struct {
	Rooms        store.RoomStore
	Reservations store.ReservationStore

	// strictRelease refuses manual status overrides that contradict a
	// checked-in reservation. Off unless configured, so front desk staff
	// keep their manual override.
	strictRelease bool
}

func NewRoomService(stores *store.Stores, strictRelease bool) *RoomService {
	return &RoomService{
		Rooms:         stores.Rooms,
		Reservations:  stores.Reservations,
		strictRelease: strictRelease,
	}
}

func (s *RoomService) List(ctx context.Context) ([]db.Room, error) {
	return s.Rooms.GetAll(ctx)
}

func (s *RoomService) Get(ctx context.Context, id string) (*db.Room, error) {
	return s.Rooms.GetByID(ctx, id)
}

func validateRoomInput(in entities.RoomRequest) error {
	if in.Number == "" {
		return apperr.NewValidation("room number is required")
	}
	if in.Price <= 0 {
		return apperr.NewValidation("room price must be greater than zero")
	}
	if in.Capacity <= 0 {
		return apperr.NewValidation("room capacity must be greater than zero")
	}
	if in.Status != "" && !db.RoomStatus(in.Status).Valid() {
		return apperr.NewValidation("unknown room status %q", in.Status)
	}
	return nil
}

func (s *RoomService) Create(ctx context.Context, in entities.RoomRequest) (*db.Room, error) {
	if err := validateRoomInput(in); err != nil {
		return nil, err
	}
	status := db.RoomStatus(in.Status)
	if in.Status == "" {
		status = db.RoomAvailable
	}
	room, err := s.Rooms.Create(ctx, db.Room{
		Number:    in.Number,
		Floor:     in.Floor,
		Type:      in.Type,
		Price:     in.Price,
		Capacity:  in.Capacity,
		Amenities: in.Amenities,
		Status:    status,
	})
	if err != nil {
		return nil, fmt.Errorf("creating room: %w", err)
	}
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id string, in entities.RoomRequest) (*db.Room, error) {
	existing, err := s.Rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateRoomInput(in); err != nil {
		return nil, err
	}
	updated := *existing
	updated.Number = in.Number
	updated.Floor = in.Floor
	updated.Type = in.Type
	updated.Price = in.Price
	updated.Capacity = in.Capacity
	updated.Amenities = in.Amenities
	if in.Status != "" {
		updated.Status = db.RoomStatus(in.Status)
	}
	room, err := s.Rooms.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("updating room: %w", err)
	}
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	return s.Rooms.Delete(ctx, id)
}

// SetStatus applies a direct room status edit, independent of reservation
// state: cleaning done, maintenance on/off, manual check-out of a room. The
// guest link is left untouched unless the room becomes occupied with a new
// guest elsewhere; clearing it is the reservation lifecycle's job.
func (s *RoomService) SetStatus(ctx context.Context, id string, newStatus db.RoomStatus) (*db.Room, error) {
	if !newStatus.Valid() {
		return nil, apperr.NewValidation("unknown room status %q", string(newStatus))
	}
	room, err := s.Rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.strictRelease && room.Status == db.RoomOccupied &&
		(newStatus == db.RoomAvailable || newStatus == db.RoomMaintenance) {
		held, err := s.heldByActiveReservation(ctx, id)
		if err != nil {
			return nil, err
		}
		if held {
			return nil, apperr.NewValidation("room %s is held by a checked-in reservation", room.Number)
		}
	}

	updated := *room
	updated.Status = newStatus
	saved, err := s.Rooms.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("updating room status: %w", err)
	}
	return saved, nil
}

func (s *RoomService) heldByActiveReservation(ctx context.Context, roomID string) (bool, error) {
	reservations, err := s.Reservations.GetAll(ctx)
	if err != nil {
		return false, fmt.Errorf("listing reservations: %w", err)
	}
	for _, res := range reservations {
		if res.Status != db.ReservationCheckedIn {
			continue
		}
		for _, id := range res.RoomIDs {
			if id == roomID {
				return true, nil
			}
		}
	}
	return false, nil
}
