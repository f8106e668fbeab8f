package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"frontdesk/internal/db"
	"frontdesk/internal/entities"
	"frontdesk/internal/store"
	"frontdesk/internal/utils"
)

const scheduleLimit = 5

// DashboardService aggregates room occupancy and today's movements for the
// front-desk overview.
type DashboardService struct {
	Rooms        store.RoomStore
	Reservations store.ReservationStore
	Guests       store.GuestStore

	now func() time.Time
}

func NewDashboardService(stores *store.Stores) *DashboardService {
	return &DashboardService{
		Rooms:        stores.Rooms,
		Reservations: stores.Reservations,
		Guests:       stores.Guests,
		now:          time.Now,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	rooms, err := s.Rooms.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	reservations, err := s.Reservations.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}

	stats := &entities.DashboardStats{TotalRooms: len(rooms)}
	for _, room := range rooms {
		switch room.Status {
		case db.RoomOccupied:
			stats.OccupiedRooms++
		case db.RoomAvailable:
			stats.AvailableRooms++
		case db.RoomCleaning:
			stats.CleaningRooms++
		}
	}
	if stats.TotalRooms > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.OccupiedRooms) / float64(stats.TotalRooms) * 100))
	}

	today := s.now()
	for _, res := range reservations {
		if res.Status == db.ReservationConfirmed && utils.SameDay(res.CheckIn, today) {
			stats.TodayArrivals++
		}
		if res.Status == db.ReservationCheckedIn && utils.SameDay(res.CheckOut, today) {
			stats.TodayDepartures++
		}
	}
	return stats, nil
}

// Schedule lists up to five of today's arrivals (confirmed, checking in today)
// and departures (checked-in, checking out today), joined with guest and room.
func (s *DashboardService) Schedule(ctx context.Context) (*entities.ScheduleResponse, error) {
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

	entry := func(res db.Reservation) entities.ScheduleEntry {
		e := entities.ScheduleEntry{Reservation: res}
		if guest, ok := guestsByID[res.GuestID]; ok {
			e.Guest = &guest
		}
		if len(res.RoomIDs) > 0 {
			if room, ok := roomsByID[res.RoomIDs[0]]; ok {
				e.Room = &room
			}
		}
		return e
	}

	today := s.now()
	out := &entities.ScheduleResponse{
		Arrivals:   []entities.ScheduleEntry{},
		Departures: []entities.ScheduleEntry{},
	}
	for _, res := range reservations {
		if res.Status == db.ReservationConfirmed && utils.SameDay(res.CheckIn, today) && len(out.Arrivals) < scheduleLimit {
			out.Arrivals = append(out.Arrivals, entry(res))
		}
		if res.Status == db.ReservationCheckedIn && utils.SameDay(res.CheckOut, today) && len(out.Departures) < scheduleLimit {
			out.Departures = append(out.Departures, entry(res))
		}
	}
	return out, nil
}
