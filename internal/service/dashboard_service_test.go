package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/db"
	"frontdesk/internal/store"
	"frontdesk/internal/store/memory"
)

func seedDashboard(t *testing.T) (*store.Stores, *DashboardService) {
	t.Helper()
	ctx := context.Background()
	stores := memory.New(0)

	statuses := []db.RoomStatus{
		db.RoomOccupied, db.RoomOccupied, db.RoomAvailable, db.RoomCleaning, db.RoomMaintenance,
	}
	for i, status := range statuses {
		_, err := stores.Rooms.Create(ctx, db.Room{
			Number: string(rune('1'+i)) + "01", Price: 100, Capacity: 2, Status: status,
		})
		require.NoError(t, err)
	}

	svc := NewDashboardService(stores)
	svc.now = func() time.Time { return testNow }
	return stores, svc
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	stores, svc := seedDashboard(t)

	guest, err := stores.Guests.Create(ctx, db.Guest{FirstName: "Alice", LastName: "Martin"})
	require.NoError(t, err)

	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	seedRes := []db.Reservation{
		{GuestID: guest.ID, Status: db.ReservationConfirmed, CheckIn: today, CheckOut: today.AddDate(0, 0, 2)},
		{GuestID: guest.ID, Status: db.ReservationConfirmed, CheckIn: today.AddDate(0, 0, 5), CheckOut: today.AddDate(0, 0, 7)},
		{GuestID: guest.ID, Status: db.ReservationCheckedIn, CheckIn: today.AddDate(0, 0, -2), CheckOut: today},
		{GuestID: guest.ID, Status: db.ReservationCancelled, CheckIn: today, CheckOut: today.AddDate(0, 0, 1)},
	}
	for _, res := range seedRes {
		_, err := stores.Reservations.Create(ctx, res)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalRooms)
	assert.Equal(t, 2, stats.OccupiedRooms)
	assert.Equal(t, 1, stats.AvailableRooms)
	assert.Equal(t, 1, stats.CleaningRooms)
	assert.Equal(t, 40, stats.OccupancyRate)
	assert.Equal(t, 1, stats.TodayArrivals)
	assert.Equal(t, 1, stats.TodayDepartures)
}

func TestDashboardStatsEmpty(t *testing.T) {
	svc := NewDashboardService(memory.New(0))
	svc.now = func() time.Time { return testNow }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRooms)
	assert.Equal(t, 0, stats.OccupancyRate)
}

func TestDashboardScheduleJoinsAndCapping(t *testing.T) {
	ctx := context.Background()
	stores, svc := seedDashboard(t)

	guest, err := stores.Guests.Create(ctx, db.Guest{FirstName: "Bruno", LastName: "Costa"})
	require.NoError(t, err)
	room, err := stores.Rooms.Create(ctx, db.Room{Number: "601", Price: 100, Capacity: 2, Status: db.RoomAvailable})
	require.NoError(t, err)

	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < scheduleLimit+2; i++ {
		_, err := stores.Reservations.Create(ctx, db.Reservation{
			GuestID: guest.ID, RoomIDs: []string{room.ID},
			Status: db.ReservationConfirmed, CheckIn: today, CheckOut: today.AddDate(0, 0, 1),
		})
		require.NoError(t, err)
	}
	departing, err := stores.Reservations.Create(ctx, db.Reservation{
		GuestID: guest.ID, RoomIDs: []string{room.ID},
		Status: db.ReservationCheckedIn, CheckIn: today.AddDate(0, 0, -1), CheckOut: today,
	})
	require.NoError(t, err)

	schedule, err := svc.Schedule(ctx)
	require.NoError(t, err)
	assert.Len(t, schedule.Arrivals, scheduleLimit)
	require.Len(t, schedule.Departures, 1)

	entry := schedule.Departures[0]
	assert.Equal(t, departing.ID, entry.Reservation.ID)
	require.NotNil(t, entry.Guest)
	assert.Equal(t, "Bruno Costa", entry.Guest.FullName())
	require.NotNil(t, entry.Room)
	assert.Equal(t, "601", entry.Room.Number)
}
