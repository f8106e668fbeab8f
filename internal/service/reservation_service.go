package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"frontdesk/internal/db"
	"frontdesk/internal/entities"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/store"
	"frontdesk/internal/utils"
)

// Tax rate and service fee are fixed house policy, applied to every
// reservation regardless of room count or discount.
const (
	taxRate    = 0.12
	serviceFee = 25.00
)

// ReservationService owns reservation creation, status transitions, pricing
// and the occupancy link between a reservation and its rooms.
type ReservationService struct {
	Reservations store.ReservationStore
	Rooms        store.RoomStore
	Guests       store.GuestStore
	Notifier     *NotifyService

	now func() time.Time
}

func NewReservationService(stores *store.Stores, notifier *NotifyService) *ReservationService {
	return &ReservationService{
		Reservations: stores.Reservations,
		Rooms:        stores.Rooms,
		Guests:       stores.Guests,
		Notifier:     notifier,
		now:          time.Now,
	}
}

func (s *ReservationService) breakdown(rooms []db.Room, fees, discount float64) entities.PaymentBreakdown {
	var roomCost float64
	for _, room := range rooms {
		roomCost += room.Price
	}
	subtotal := roomCost + fees - discount
	if subtotal < 0 {
		subtotal = 0
	}
	subtotal = utils.Round2(subtotal)
	taxes := utils.Round2(subtotal * taxRate)
	return entities.PaymentBreakdown{
		RoomCost:       utils.Round2(roomCost),
		AdditionalFees: fees,
		DiscountAmount: discount,
		Subtotal:       subtotal,
		Taxes:          taxes,
		ServiceFee:     serviceFee,
		Total:          utils.Round2(subtotal + taxes + serviceFee),
	}
}

func paymentStatusFor(method string) string {
	if method == db.PaymentMethodCash {
		return db.PaymentPaid
	}
	return db.PaymentPending
}

func (s *ReservationService) validateAmountsAndDates(in entities.CreateReservationInput) error {
	if len(in.RoomIDs) == 0 {
		return apperr.NewValidation("at least one room is required")
	}
	if in.DiscountAmount < 0 {
		return apperr.NewValidation("discount amount cannot be negative")
	}
	if in.AdditionalFees < 0 {
		return apperr.NewValidation("additional fees cannot be negative")
	}
	if !in.CheckOut.After(in.CheckIn) {
		return apperr.NewValidation("check-out must be after check-in")
	}
	return nil
}

// loadRooms resolves every referenced room. When requireAvailable is set, a
// room in any other state fails validation before any store is mutated.
func (s *ReservationService) loadRooms(ctx context.Context, roomIDs []string, requireAvailable bool) ([]db.Room, error) {
	rooms := make([]db.Room, 0, len(roomIDs))
	for _, id := range roomIDs {
		room, err := s.Rooms.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if requireAvailable && room.Status != db.RoomAvailable {
			return nil, apperr.NewValidation("room %s is not available (status %s)", room.Number, room.Status)
		}
		rooms = append(rooms, *room)
	}
	return rooms, nil
}

// Create books a new reservation with status confirmed. All validation happens
// before any write: on error no store is mutated.
func (s *ReservationService) Create(ctx context.Context, in entities.CreateReservationInput) (*entities.ReservationResponse, error) {
	if err := s.validateAmountsAndDates(in); err != nil {
		return nil, err
	}
	if utils.Day(in.CheckIn).Before(utils.Day(s.now())) {
		return nil, apperr.NewValidation("check-in date cannot be in the past")
	}
	guest, err := s.Guests.GetByID(ctx, in.GuestID)
	if err != nil {
		return nil, err
	}
	rooms, err := s.loadRooms(ctx, in.RoomIDs, true)
	if err != nil {
		return nil, err
	}

	bd := s.breakdown(rooms, in.AdditionalFees, in.DiscountAmount)
	nowUTC := s.now().UTC()
	created, err := s.Reservations.Create(ctx, db.Reservation{
		GuestID:        in.GuestID,
		RoomIDs:        in.RoomIDs,
		CheckIn:        in.CheckIn,
		CheckOut:       in.CheckOut,
		Status:         db.ReservationConfirmed,
		Notes:          in.Notes,
		PaymentMethod:  in.PaymentMethod,
		PaymentStatus:  paymentStatusFor(in.PaymentMethod),
		DiscountAmount: in.DiscountAmount,
		AdditionalFees: in.AdditionalFees,
		TotalAmount:    bd.Total,
		CreatedAt:      nowUTC,
		UpdatedAt:      nowUTC,
	})
	if err != nil {
		return nil, fmt.Errorf("creating reservation: %w", err)
	}

	s.Notifier.ReservationCreated(ctx, *created, *guest, rooms, bd)
	return s.respond(*created, rooms), nil
}

// QuickCheckIn creates a reservation for a single room and immediately checks
// the guest in, flipping the room to occupied. The room must be available.
func (s *ReservationService) QuickCheckIn(ctx context.Context, in entities.CreateReservationInput) (*entities.ReservationResponse, error) {
	if len(in.RoomIDs) != 1 {
		return nil, apperr.NewValidation("quick check-in takes exactly one room")
	}
	room, err := s.Rooms.GetByID(ctx, in.RoomIDs[0])
	if err != nil {
		return nil, err
	}
	if room.Status != db.RoomAvailable {
		return nil, &apperr.RoomUnavailableError{RoomID: room.ID, Status: string(room.Status)}
	}
	if in.CheckIn.IsZero() {
		in.CheckIn = utils.Day(s.now())
	}
	if err := s.validateAmountsAndDates(in); err != nil {
		return nil, err
	}
	guest, err := s.Guests.GetByID(ctx, in.GuestID)
	if err != nil {
		return nil, err
	}

	rooms := []db.Room{*room}
	bd := s.breakdown(rooms, in.AdditionalFees, in.DiscountAmount)
	nowUTC := s.now().UTC()
	created, err := s.Reservations.Create(ctx, db.Reservation{
		GuestID:        in.GuestID,
		RoomIDs:        in.RoomIDs,
		CheckIn:        in.CheckIn,
		CheckOut:       in.CheckOut,
		Status:         db.ReservationCheckedIn,
		Notes:          in.Notes,
		PaymentMethod:  in.PaymentMethod,
		PaymentStatus:  paymentStatusFor(in.PaymentMethod),
		DiscountAmount: in.DiscountAmount,
		AdditionalFees: in.AdditionalFees,
		TotalAmount:    bd.Total,
		CreatedAt:      nowUTC,
		UpdatedAt:      nowUTC,
	})
	if err != nil {
		return nil, fmt.Errorf("creating quick check-in reservation: %w", err)
	}

	occupied := *room
	occupied.Status = db.RoomOccupied
	occupied.CurrentGuestID = in.GuestID
	if _, err := s.Rooms.Update(ctx, occupied.ID, occupied); err != nil {
		// Compensate: the reservation must not survive without its room.
		if delErr := s.Reservations.Delete(ctx, created.ID); delErr != nil {
			log.Printf("quick check-in: could not roll back reservation %s: %v", created.ID, delErr)
		}
		return nil, fmt.Errorf("occupying room %s: %w", room.Number, err)
	}

	s.Notifier.GuestCheckedIn(ctx, *created, *guest, rooms)
	return s.respond(*created, rooms), nil
}

// ChangeStatus applies one of the permitted lifecycle transitions:
//
//	confirmed  -> checked-in   rooms become occupied, guest linked
//	confirmed  -> cancelled    rooms unaffected
//	checked-in -> checked-out  rooms go to cleaning, guest link cleared
//
// Any other pair fails with InvalidTransitionError, leaving the reservation
// untouched. Room writes precede the reservation write and are rolled back if
// the reservation write fails.
func (s *ReservationService) ChangeStatus(ctx context.Context, id string, newStatus db.ReservationStatus) (*entities.ReservationResponse, error) {
	if !newStatus.Valid() {
		return nil, apperr.NewValidation("unknown reservation status %q", string(newStatus))
	}
	res, err := s.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := res.Status
	var previous []db.Room
	switch {
	case from == db.ReservationConfirmed && newStatus == db.ReservationCheckedIn:
		previous, err = s.setRooms(ctx, res.RoomIDs, db.RoomOccupied, res.GuestID)
	case from == db.ReservationConfirmed && newStatus == db.ReservationCancelled:
		// Rooms were never occupied by this reservation; nothing to release.
	case from == db.ReservationCheckedIn && newStatus == db.ReservationCheckedOut:
		previous, err = s.setRooms(ctx, res.RoomIDs, db.RoomCleaning, "")
	default:
		return nil, &apperr.InvalidTransitionError{From: string(from), To: string(newStatus)}
	}
	if err != nil {
		return nil, err
	}

	updated := *res
	updated.Status = newStatus
	updated.UpdatedAt = s.now().UTC()
	saved, err := s.Reservations.Update(ctx, id, updated)
	if err != nil {
		s.restoreRooms(ctx, previous)
		return nil, fmt.Errorf("updating reservation status: %w", err)
	}

	s.notifyTransition(ctx, *saved, newStatus)
	rooms, roomsErr := s.loadRooms(ctx, saved.RoomIDs, false)
	if roomsErr != nil {
		log.Printf("loading rooms for reservation %s response: %v", saved.ID, roomsErr)
	}
	return s.respond(*saved, rooms), nil
}

// setRooms moves every referenced room to the given status and guest link,
// returning the prior states for rollback. A mid-flight failure restores the
// rooms already written.
func (s *ReservationService) setRooms(ctx context.Context, roomIDs []string, status db.RoomStatus, guestID string) ([]db.Room, error) {
	var previous []db.Room
	for _, roomID := range roomIDs {
		room, err := s.Rooms.GetByID(ctx, roomID)
		if err != nil {
			s.restoreRooms(ctx, previous)
			return nil, err
		}
		updated := *room
		updated.Status = status
		updated.CurrentGuestID = guestID
		if _, err := s.Rooms.Update(ctx, roomID, updated); err != nil {
			s.restoreRooms(ctx, previous)
			return nil, fmt.Errorf("updating room %s: %w", room.Number, err)
		}
		previous = append(previous, *room)
	}
	return previous, nil
}

// restoreRooms is best effort: a failed restore is logged, not propagated.
func (s *ReservationService) restoreRooms(ctx context.Context, previous []db.Room) {
	for _, room := range previous {
		if _, err := s.Rooms.Update(ctx, room.ID, room); err != nil {
			log.Printf("rolling back room %s: %v", room.ID, err)
		}
	}
}

func (s *ReservationService) notifyTransition(ctx context.Context, res db.Reservation, status db.ReservationStatus) {
	guest, err := s.Guests.GetByID(ctx, res.GuestID)
	if err != nil {
		log.Printf("loading guest %s for notification: %v", res.GuestID, err)
		return
	}
	rooms, err := s.loadRooms(ctx, res.RoomIDs, false)
	if err != nil {
		log.Printf("loading rooms for notification: %v", err)
	}
	switch status {
	case db.ReservationCheckedIn:
		s.Notifier.GuestCheckedIn(ctx, res, *guest, rooms)
	case db.ReservationCheckedOut:
		s.Notifier.GuestCheckedOut(ctx, res, *guest, rooms)
	case db.ReservationCancelled:
		s.Notifier.ReservationCancelled(ctx, res, *guest)
	}
}

// Update replaces the editable fields of a reservation and recomputes the full
// payment breakdown from the patched rooms, fees and discount. Client-supplied
// totals are never trusted. Status is not editable here; ChangeStatus is the
// only status mutator.
func (s *ReservationService) Update(ctx context.Context, id string, in entities.CreateReservationInput) (*entities.ReservationResponse, error) {
	existing, err := s.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateAmountsAndDates(in); err != nil {
		return nil, err
	}
	if _, err := s.Guests.GetByID(ctx, in.GuestID); err != nil {
		return nil, err
	}
	// Rooms must exist, but availability is not re-checked: the reservation may
	// already hold them.
	rooms, err := s.loadRooms(ctx, in.RoomIDs, false)
	if err != nil {
		return nil, err
	}

	bd := s.breakdown(rooms, in.AdditionalFees, in.DiscountAmount)
	updated := *existing
	updated.GuestID = in.GuestID
	updated.RoomIDs = in.RoomIDs
	updated.CheckIn = in.CheckIn
	updated.CheckOut = in.CheckOut
	updated.Notes = in.Notes
	if in.PaymentMethod != existing.PaymentMethod {
		updated.PaymentMethod = in.PaymentMethod
		updated.PaymentStatus = paymentStatusFor(in.PaymentMethod)
	}
	updated.DiscountAmount = in.DiscountAmount
	updated.AdditionalFees = in.AdditionalFees
	updated.TotalAmount = bd.Total
	updated.UpdatedAt = s.now().UTC()

	saved, err := s.Reservations.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("updating reservation: %w", err)
	}
	return s.respond(*saved, rooms), nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*entities.ReservationResponse, error) {
	res, err := s.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rooms, err := s.loadRooms(ctx, res.RoomIDs, false)
	if err != nil {
		// A referenced room may have been deleted; price what remains.
		log.Printf("loading rooms for reservation %s: %v", id, err)
	}
	return s.respond(*res, rooms), nil
}

type ReservationFilter struct {
	Status string
	Search string
}

// List returns reservations sorted by check-in descending, optionally filtered
// by status and by a free-text search over guest name, phone, room number and
// reservation id.
func (s *ReservationService) List(ctx context.Context, filter ReservationFilter) (*entities.ReservationsList, error) {
	reservations, err := s.Reservations.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	guests, err := s.Guests.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing guests: %w", err)
	}
	rooms, err := s.Rooms.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}

	guestsByID := make(map[string]db.Guest, len(guests))
	for _, guest := range guests {
		guestsByID[guest.ID] = guest
	}
	roomsByID := make(map[string]db.Room, len(rooms))
	for _, room := range rooms {
		roomsByID[room.ID] = room
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	var out []entities.ReservationResponse
	for _, res := range reservations {
		if filter.Status != "" && filter.Status != "all" && string(res.Status) != filter.Status {
			continue
		}
		if search != "" && !matchesSearch(res, guestsByID, roomsByID, search) {
			continue
		}
		resRooms := make([]db.Room, 0, len(res.RoomIDs))
		for _, roomID := range res.RoomIDs {
			if room, ok := roomsByID[roomID]; ok {
				resRooms = append(resRooms, room)
			}
		}
		out = append(out, *s.respond(res, resRooms))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CheckIn.After(out[j].CheckIn)
	})
	return &entities.ReservationsList{Total: len(out), Reservations: out}, nil
}

func matchesSearch(res db.Reservation, guests map[string]db.Guest, rooms map[string]db.Room, search string) bool {
	if strings.Contains(strings.ToLower(res.ID), search) {
		return true
	}
	if guest, ok := guests[res.GuestID]; ok {
		if strings.Contains(strings.ToLower(guest.FirstName), search) ||
			strings.Contains(strings.ToLower(guest.LastName), search) ||
			strings.Contains(guest.Phone, search) {
			return true
		}
	}
	for _, roomID := range res.RoomIDs {
		if room, ok := rooms[roomID]; ok && strings.Contains(room.Number, search) {
			return true
		}
	}
	return false
}

// Delete removes a reservation. Rooms are intentionally left untouched:
// housekeeping owns the room state via direct status edits, so deleting a
// record never cascades into the room board.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	return s.Reservations.Delete(ctx, id)
}

func (s *ReservationService) respond(res db.Reservation, rooms []db.Room) *entities.ReservationResponse {
	return &entities.ReservationResponse{
		Reservation:      res,
		Nights:           utils.Nights(res.CheckIn, res.CheckOut),
		PaymentBreakdown: s.breakdown(rooms, res.AdditionalFees, res.DiscountAmount),
	}
}
