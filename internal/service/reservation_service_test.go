package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/db"
	"frontdesk/internal/entities"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/store"
	"frontdesk/internal/store/memory"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	stores  *store.Stores
	svc     *ReservationService
	guest   *db.Guest
	room101 *db.Room
	room201 *db.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	stores := memory.New(0)

	guest, err := stores.Guests.Create(ctx, db.Guest{
		FirstName: "Alice", LastName: "Martin",
		Email: "alice@example.com", Phone: "+15552011001",
	})
	require.NoError(t, err)

	room101, err := stores.Rooms.Create(ctx, db.Room{
		Number: "101", Floor: 1, Type: "Standard", Price: 100, Capacity: 2, Status: db.RoomAvailable,
	})
	require.NoError(t, err)
	room201, err := stores.Rooms.Create(ctx, db.Room{
		Number: "201", Floor: 2, Type: "Deluxe", Price: 150, Capacity: 2, Status: db.RoomAvailable,
	})
	require.NoError(t, err)

	svc := NewReservationService(stores, NewNotifyService(stores, nil))
	svc.now = func() time.Time { return testNow }
	return &fixture{stores: stores, svc: svc, guest: guest, room101: room101, room201: room201}
}

func (f *fixture) input() entities.CreateReservationInput {
	return entities.CreateReservationInput{
		GuestID:  f.guest.ID,
		RoomIDs:  []string{f.room101.ID, f.room201.ID},
		CheckIn:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateReservationPricing(t *testing.T) {
	f := newFixture(t)
	in := f.input()
	in.AdditionalFees = 20
	in.DiscountAmount = 30

	res, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)

	// rooms 100 + 150, +20 fees, -30 discount = 240; 12% tax; $25 service fee
	bd := res.PaymentBreakdown
	assert.Equal(t, 250.00, bd.RoomCost)
	assert.Equal(t, 240.00, bd.Subtotal)
	assert.Equal(t, 28.80, bd.Taxes)
	assert.Equal(t, 25.00, bd.ServiceFee)
	assert.Equal(t, 293.80, bd.Total)
	assert.Equal(t, 293.80, res.TotalAmount)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, db.ReservationConfirmed, res.Status)
	assert.Equal(t, db.PaymentPending, res.PaymentStatus)
}

func TestCreateReservationDiscountFloorsAtZero(t *testing.T) {
	f := newFixture(t)
	in := f.input()
	in.RoomIDs = []string{f.room101.ID}
	in.DiscountAmount = 500

	res, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0.00, res.PaymentBreakdown.Subtotal)
	assert.Equal(t, 0.00, res.PaymentBreakdown.Taxes)
	assert.Equal(t, 25.00, res.PaymentBreakdown.Total)
}

func TestCreateReservationCashIsPaid(t *testing.T) {
	f := newFixture(t)
	in := f.input()
	in.PaymentMethod = db.PaymentMethodCash

	res, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, db.PaymentPaid, res.PaymentStatus)
}

func TestCreateReservationValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*entities.CreateReservationInput)
	}{
		{"no rooms", func(in *entities.CreateReservationInput) { in.RoomIDs = nil }},
		{"negative discount", func(in *entities.CreateReservationInput) { in.DiscountAmount = -1 }},
		{"negative fees", func(in *entities.CreateReservationInput) { in.AdditionalFees = -1 }},
		{"checkout not after checkin", func(in *entities.CreateReservationInput) { in.CheckOut = in.CheckIn }},
		{"checkin in the past", func(in *entities.CreateReservationInput) {
			in.CheckIn = testNow.AddDate(0, 0, -2)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := f.input()
			tc.mutate(&in)
			_, err := f.svc.Create(ctx, in)
			var verr *apperr.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}

	// no reservation was written by any failed attempt
	all, err := f.stores.Reservations.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateReservationRejectsUnavailableRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	occupied := *f.room201
	occupied.Status = db.RoomOccupied
	_, err := f.stores.Rooms.Update(ctx, occupied.ID, occupied)
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.input())
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)

	all, err := f.stores.Reservations.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateReservationUnknownGuest(t *testing.T) {
	f := newFixture(t)
	in := f.input()
	in.GuestID = "missing"

	_, err := f.svc.Create(context.Background(), in)
	var nferr *apperr.NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestChangeStatusCheckIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	res, err := f.svc.ChangeStatus(ctx, created.ID, db.ReservationCheckedIn)
	require.NoError(t, err)
	assert.Equal(t, db.ReservationCheckedIn, res.Status)

	for _, id := range []string{f.room101.ID, f.room201.ID} {
		room, err := f.stores.Rooms.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, db.RoomOccupied, room.Status)
		assert.Equal(t, f.guest.ID, room.CurrentGuestID)
	}
}

func TestChangeStatusCheckOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, created.ID, db.ReservationCheckedIn)
	require.NoError(t, err)

	res, err := f.svc.ChangeStatus(ctx, created.ID, db.ReservationCheckedOut)
	require.NoError(t, err)
	assert.Equal(t, db.ReservationCheckedOut, res.Status)

	for _, id := range []string{f.room101.ID, f.room201.ID} {
		room, err := f.stores.Rooms.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, db.RoomCleaning, room.Status)
		assert.Empty(t, room.CurrentGuestID)
	}
}

func TestChangeStatusCancelLeavesRooms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	res, err := f.svc.ChangeStatus(ctx, created.ID, db.ReservationCancelled)
	require.NoError(t, err)
	assert.Equal(t, db.ReservationCancelled, res.Status)

	room, err := f.stores.Rooms.GetByID(ctx, f.room101.ID)
	require.NoError(t, err)
	assert.Equal(t, db.RoomAvailable, room.Status)
}

func TestChangeStatusRejectsForbiddenTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	forbidden := []struct {
		from db.ReservationStatus
		to   db.ReservationStatus
	}{
		{db.ReservationConfirmed, db.ReservationCheckedOut},
		{db.ReservationCheckedIn, db.ReservationConfirmed},
		{db.ReservationCheckedIn, db.ReservationCancelled},
		{db.ReservationCheckedOut, db.ReservationCheckedIn},
		{db.ReservationCheckedOut, db.ReservationConfirmed},
		{db.ReservationCancelled, db.ReservationConfirmed},
		{db.ReservationCancelled, db.ReservationCheckedIn},
		{db.ReservationConfirmed, db.ReservationConfirmed},
	}
	for _, tc := range forbidden {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			created, err := f.stores.Reservations.Create(ctx, db.Reservation{
				GuestID:  f.guest.ID,
				RoomIDs:  []string{f.room101.ID},
				CheckIn:  testNow,
				CheckOut: testNow.AddDate(0, 0, 1),
				Status:   tc.from,
			})
			require.NoError(t, err)

			_, err = f.svc.ChangeStatus(ctx, created.ID, tc.to)
			var terr *apperr.InvalidTransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, string(tc.from), terr.From)
			assert.Equal(t, string(tc.to), terr.To)

			// the reservation stays untouched
			after, err := f.stores.Reservations.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.from, after.Status)
		})
	}
}

func TestChangeStatusUnknownStatus(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ChangeStatus(context.Background(), "whatever", "teleported")
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
}

// failingReservationStore makes every Update fail so the rollback path can be
// observed.
type failingReservationStore struct {
	store.ReservationStore
}

func (s *failingReservationStore) Update(ctx context.Context, id string, res db.Reservation) (*db.Reservation, error) {
	return nil, errors.New("update refused")
}

func TestChangeStatusRollsBackRoomsOnReservationFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	f.svc.Reservations = &failingReservationStore{ReservationStore: f.stores.Reservations}

	_, err = f.svc.ChangeStatus(ctx, created.ID, db.ReservationCheckedIn)
	require.Error(t, err)

	// the room writes preceded the failing reservation write and were undone
	for _, id := range []string{f.room101.ID, f.room201.ID} {
		room, err := f.stores.Rooms.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, db.RoomAvailable, room.Status)
		assert.Empty(t, room.CurrentGuestID)
	}
}

func TestQuickCheckIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := f.input()
	in.RoomIDs = []string{f.room101.ID}
	in.CheckIn = time.Time{} // defaults to today

	res, err := f.svc.QuickCheckIn(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, db.ReservationCheckedIn, res.Status)
	assert.True(t, res.CheckIn.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	room, err := f.stores.Rooms.GetByID(ctx, f.room101.ID)
	require.NoError(t, err)
	assert.Equal(t, db.RoomOccupied, room.Status)
	assert.Equal(t, f.guest.ID, room.CurrentGuestID)
}

func TestQuickCheckInRoomNotAvailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	occupied := *f.room101
	occupied.Status = db.RoomOccupied
	_, err := f.stores.Rooms.Update(ctx, occupied.ID, occupied)
	require.NoError(t, err)

	in := f.input()
	in.RoomIDs = []string{f.room101.ID}

	_, err = f.svc.QuickCheckIn(ctx, in)
	var uerr *apperr.RoomUnavailableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, f.room101.ID, uerr.RoomID)

	all, err := f.stores.Reservations.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestQuickCheckInRequiresExactlyOneRoom(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.QuickCheckIn(context.Background(), f.input())
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUpdateRecomputesTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	// drop to one room, add a fee
	in := f.input()
	in.RoomIDs = []string{f.room201.ID}
	in.AdditionalFees = 10

	res, err := f.svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	// 150 + 10 = 160; tax 19.20; fee 25 => 204.20
	assert.Equal(t, 160.00, res.PaymentBreakdown.Subtotal)
	assert.Equal(t, 204.20, res.TotalAmount)
	assert.Equal(t, db.ReservationConfirmed, res.Status)
}

func TestUpdateNoChangeKeepsTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	res, err := f.svc.Update(ctx, created.ID, f.input())
	require.NoError(t, err)
	assert.Equal(t, created.TotalAmount, res.TotalAmount)
	assert.Equal(t, created.PaymentStatus, res.PaymentStatus)
}

func TestUpdatePaymentMethodChangeResetsStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := f.input()
	in.PaymentMethod = db.PaymentMethodCash
	created, err := f.svc.Create(ctx, in)
	require.NoError(t, err)
	require.Equal(t, db.PaymentPaid, created.PaymentStatus)

	in.PaymentMethod = "card"
	res, err := f.svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, db.PaymentPending, res.PaymentStatus)
}

func TestUpdateAllowsHeldRooms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, created.ID, db.ReservationCheckedIn)
	require.NoError(t, err)

	// rooms are occupied by this very reservation; editing must still work
	in := f.input()
	in.Notes = "late arrival"
	res, err := f.svc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "late arrival", res.Notes)
}

func TestListFilterAndSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)

	later := f.input()
	later.RoomIDs = []string{f.room201.ID}
	later.CheckIn = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	later.CheckOut = time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	second, err := f.svc.Create(ctx, later)
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, second.ID, db.ReservationCancelled)
	require.NoError(t, err)

	all, err := f.svc.List(ctx, ReservationFilter{})
	require.NoError(t, err)
	require.Equal(t, 2, all.Total)
	// sorted by check-in descending
	assert.Equal(t, second.ID, all.Reservations[0].ID)
	assert.Equal(t, first.ID, all.Reservations[1].ID)

	confirmed, err := f.svc.List(ctx, ReservationFilter{Status: "confirmed"})
	require.NoError(t, err)
	require.Equal(t, 1, confirmed.Total)
	assert.Equal(t, first.ID, confirmed.Reservations[0].ID)

	byGuest, err := f.svc.List(ctx, ReservationFilter{Search: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 2, byGuest.Total)

	byRoom, err := f.svc.List(ctx, ReservationFilter{Search: "101"})
	require.NoError(t, err)
	require.Equal(t, 1, byRoom.Total)
	assert.Equal(t, first.ID, byRoom.Reservations[0].ID)

	none, err := f.svc.List(ctx, ReservationFilter{Search: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, 0, none.Total)
}

func TestDeleteLeavesRoomsUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.input())
	require.NoError(t, err)
	_, err = f.svc.ChangeStatus(ctx, created.ID, db.ReservationCheckedIn)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))

	_, err = f.stores.Reservations.GetByID(ctx, created.ID)
	var nferr *apperr.NotFoundError
	require.ErrorAs(t, err, &nferr)

	room, err := f.stores.Rooms.GetByID(ctx, f.room101.ID)
	require.NoError(t, err)
	assert.Equal(t, db.RoomOccupied, room.Status)
}
