// Package store defines the entity store contract shared by the in-memory and
// Postgres backends. Every operation is context-aware and may fail; callers
// must not assume ordering between independently issued calls.
package store

import (
	"context"

	"frontdesk/internal/db"
)

type RoomStore interface {
	GetAll(ctx context.Context) ([]db.Room, error)
	GetByID(ctx context.Context, id string) (*db.Room, error)
	Create(ctx context.Context, room db.Room) (*db.Room, error)
	Update(ctx context.Context, id string, room db.Room) (*db.Room, error)
	Delete(ctx context.Context, id string) error
}

type GuestStore interface {
	GetAll(ctx context.Context) ([]db.Guest, error)
	GetByID(ctx context.Context, id string) (*db.Guest, error)
	Create(ctx context.Context, guest db.Guest) (*db.Guest, error)
	Update(ctx context.Context, id string, guest db.Guest) (*db.Guest, error)
	Delete(ctx context.Context, id string) error
}

type ReservationStore interface {
	GetAll(ctx context.Context) ([]db.Reservation, error)
	GetByID(ctx context.Context, id string) (*db.Reservation, error)
	Create(ctx context.Context, res db.Reservation) (*db.Reservation, error)
	Update(ctx context.Context, id string, res db.Reservation) (*db.Reservation, error)
	Delete(ctx context.Context, id string) error
}

type NotificationStore interface {
	GetAll(ctx context.Context) ([]db.Notification, error)
	GetByID(ctx context.Context, id string) (*db.Notification, error)
	Create(ctx context.Context, n db.Notification) (*db.Notification, error)
	Update(ctx context.Context, id string, n db.Notification) (*db.Notification, error)
	Delete(ctx context.Context, id string) error
}

type ProfileStore interface {
	Get(ctx context.Context) (*db.StaffProfile, error)
	Update(ctx context.Context, profile db.StaffProfile) (*db.StaffProfile, error)
}

// Stores bundles one store per entity so wiring can swap backends in one place.
type Stores struct {
	Rooms         RoomStore
	Guests        GuestStore
	Reservations  ReservationStore
	Notifications NotificationStore
	Profile       ProfileStore
}
