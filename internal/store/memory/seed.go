package memory

import (
	"context"
	"log"
	"time"

	"frontdesk/internal/db"
	"frontdesk/internal/store"
)

func defaultProfile() db.StaffProfile {
	return db.StaffProfile{
		ID:         "1",
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john.doe@hotel.com",
		Phone:      "+1 (555) 123-4567",
		Role:       "Manager",
		Department: "Operations",
		JoinDate:   "2023-01-15",
		Bio:        "Experienced hotel manager with 10+ years in hospitality industry.",
		Address: db.ProfileAddress{
			Street:  "123 Main Street",
			City:    "New York",
			State:   "NY",
			ZipCode: "10001",
			Country: "United States",
		},
		Preferences: db.ProfilePreferences{
			Notifications: true,
			EmailUpdates:  true,
			Theme:         "light",
		},
	}
}

func seedRooms() []db.Room {
	standard := []string{"wifi", "tv", "air conditioning"}
	deluxe := append([]string{"mini bar", "ocean view"}, standard...)
	return []db.Room{
		{Number: "101", Floor: 1, Type: "Standard", Price: 100, Capacity: 2, Amenities: standard, Status: db.RoomAvailable},
		{Number: "102", Floor: 1, Type: "Standard", Price: 100, Capacity: 2, Amenities: standard, Status: db.RoomCleaning},
		{Number: "103", Floor: 1, Type: "Double", Price: 120, Capacity: 3, Amenities: standard, Status: db.RoomAvailable},
		{Number: "201", Floor: 2, Type: "Deluxe", Price: 150, Capacity: 2, Amenities: deluxe, Status: db.RoomAvailable},
		{Number: "202", Floor: 2, Type: "Deluxe", Price: 150, Capacity: 2, Amenities: deluxe, Status: db.RoomMaintenance},
		{Number: "301", Floor: 3, Type: "Suite", Price: 250, Capacity: 4, Amenities: append([]string{"kitchenette", "balcony"}, deluxe...), Status: db.RoomAvailable},
	}
}

func seedGuests() []db.Guest {
	return []db.Guest{
		{FirstName: "Alice", LastName: "Martin", Email: "alice.martin@example.com", Phone: "+1 (555) 201-1001", IDDocument: "P1234567", Address: "44 Elm Street, Boston, MA", Preferences: []string{"high floor", "late checkout"}, GuestType: "regular"},
		{FirstName: "Bruno", LastName: "Costa", Email: "bruno.costa@example.com", Phone: "+1 (555) 201-1002", IDDocument: "D7654321", Address: "9 Ocean Drive, Miami, FL", Preferences: []string{"quiet room"}, GuestType: "vip"},
		{FirstName: "Chen", LastName: "Wei", Email: "chen.wei@example.com", Phone: "+1 (555) 201-1003", IDDocument: "P9988776", Address: "18 Park Avenue, New York, NY", GuestType: "regular"},
	}
}

// NewSeeded returns stores pre-populated with the demo data the UI expects.
// Seeding failures are fatal: they can only come from programming errors.
func NewSeeded(latency time.Duration) *store.Stores {
	stores := New(0)
	ctx := context.Background()

	for _, room := range seedRooms() {
		if _, err := stores.Rooms.Create(ctx, room); err != nil {
			log.Fatalf("seeding rooms: %v", err)
		}
	}
	for _, guest := range seedGuests() {
		if _, err := stores.Guests.Create(ctx, guest); err != nil {
			log.Fatalf("seeding guests: %v", err)
		}
	}
	if _, err := stores.Notifications.Create(ctx, db.Notification{
		Type:    db.NotificationInfo,
		Message: "Welcome back! The front desk is ready.",
	}); err != nil {
		log.Fatalf("seeding notifications: %v", err)
	}

	// Latency is applied after seeding so startup stays instant.
	stores.Rooms.(*RoomStore).c.latency = latency
	stores.Guests.(*GuestStore).c.latency = latency
	stores.Reservations.(*ReservationStore).c.latency = latency
	stores.Notifications.(*NotificationStore).c.latency = latency
	stores.Profile.(*ProfileStore).latency = latency
	return stores
}
