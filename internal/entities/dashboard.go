package entities

import "frontdesk/internal/db"

type DashboardStats struct {
	TotalRooms      int `json:"totalRooms"`
	OccupiedRooms   int `json:"occupiedRooms"`
	AvailableRooms  int `json:"availableRooms"`
	CleaningRooms   int `json:"cleaningRooms"`
	OccupancyRate   int `json:"occupancyRate"`
	TodayArrivals   int `json:"todayArrivals"`
	TodayDepartures int `json:"todayDepartures"`
}

// ScheduleEntry joins a reservation with its guest and first room for the
// today's-schedule listing.
type ScheduleEntry struct {
	Reservation db.Reservation `json:"reservation"`
	Guest       *db.Guest      `json:"guest,omitempty"`
	Room        *db.Room       `json:"room,omitempty"`
}

type ScheduleResponse struct {
	Arrivals   []ScheduleEntry `json:"arrivals"`
	Departures []ScheduleEntry `json:"departures"`
}
