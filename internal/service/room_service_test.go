package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/db"
	"frontdesk/internal/entities"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/store/memory"
)

func TestRoomCreateDefaultsAndValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewRoomService(memory.New(0), false)

	room, err := svc.Create(ctx, entities.RoomRequest{Number: "101", Floor: 1, Type: "Standard", Price: 100, Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, db.RoomAvailable, room.Status)
	assert.NotEmpty(t, room.ID)

	cases := []entities.RoomRequest{
		{Price: 100, Capacity: 2},                                          // missing number
		{Number: "102", Price: 0, Capacity: 2},                             // non-positive price
		{Number: "102", Price: 100, Capacity: 0},                           // non-positive capacity
		{Number: "102", Price: 100, Capacity: 2, Status: "under-renovation"}, // unknown status
	}
	for _, in := range cases {
		_, err := svc.Create(ctx, in)
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr)
	}
}

func TestRoomSetStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewRoomService(memory.New(0), false)

	room, err := svc.Create(ctx, entities.RoomRequest{Number: "102", Floor: 1, Type: "Standard", Price: 100, Capacity: 2, Status: "cleaning"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, room.ID, db.RoomAvailable)
	require.NoError(t, err)
	assert.Equal(t, db.RoomAvailable, updated.Status)

	_, err = svc.SetStatus(ctx, room.ID, "broken")
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.SetStatus(ctx, "missing", db.RoomAvailable)
	var nferr *apperr.NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestRoomSetStatusStrictRelease(t *testing.T) {
	ctx := context.Background()
	stores := memory.New(0)

	room, err := stores.Rooms.Create(ctx, db.Room{Number: "201", Price: 150, Capacity: 2, Status: db.RoomOccupied, CurrentGuestID: "g1"})
	require.NoError(t, err)
	_, err = stores.Reservations.Create(ctx, db.Reservation{
		GuestID: "g1", RoomIDs: []string{room.ID}, Status: db.ReservationCheckedIn,
	})
	require.NoError(t, err)

	strict := NewRoomService(stores, true)
	_, err = strict.SetStatus(ctx, room.ID, db.RoomAvailable)
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)

	// cleaning does not count as a release, even in strict mode
	updated, err := strict.SetStatus(ctx, room.ID, db.RoomCleaning)
	require.NoError(t, err)
	assert.Equal(t, db.RoomCleaning, updated.Status)

	// default mode keeps the manual override
	loose := NewRoomService(stores, false)
	_, err = stores.Rooms.Update(ctx, room.ID, db.Room{Number: "201", Price: 150, Capacity: 2, Status: db.RoomOccupied})
	require.NoError(t, err)
	updated, err = loose.SetStatus(ctx, room.ID, db.RoomAvailable)
	require.NoError(t, err)
	assert.Equal(t, db.RoomAvailable, updated.Status)
}

func TestRoomUpdatePreservesStatusWhenOmitted(t *testing.T) {
	ctx := context.Background()
	svc := NewRoomService(memory.New(0), false)

	room, err := svc.Create(ctx, entities.RoomRequest{Number: "301", Floor: 3, Type: "Suite", Price: 250, Capacity: 4, Status: "maintenance"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, room.ID, entities.RoomRequest{Number: "301", Floor: 3, Type: "Suite", Price: 275, Capacity: 4})
	require.NoError(t, err)
	assert.Equal(t, db.RoomMaintenance, updated.Status)
	assert.Equal(t, 275.00, updated.Price)
}
