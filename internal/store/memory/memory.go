// Package memory implements the store contract with mutex-guarded maps. It is
// the canonical backend: state lives for the life of the process, entities are
// copied on the way in and out, and an optional artificial latency emulates the
// remote API the UI was written against.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"frontdesk/internal/db"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/store"
)

type collection[T any] struct {
	mu       sync.RWMutex
	items    map[string]T
	order    []string
	latency  time.Duration
	resource string
	clone    func(T) T
}

func newCollection[T any](resource string, latency time.Duration, clone func(T) T) *collection[T] {
	return &collection[T]{
		items:    make(map[string]T),
		latency:  latency,
		resource: resource,
		clone:    clone,
	}
}

// wait simulates request latency while honouring cancellation.
func (c *collection[T]) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *collection[T]) all(ctx context.Context) ([]T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.clone(c.items[id]))
	}
	return out, nil
}

func (c *collection[T]) get(ctx context.Context, id string) (*T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		return nil, apperr.NewNotFound(c.resource, id)
	}
	copied := c.clone(item)
	return &copied, nil
}

func (c *collection[T]) insert(ctx context.Context, id string, item T) (*T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = c.clone(item)
	c.order = append(c.order, id)
	copied := c.clone(item)
	return &copied, nil
}

func (c *collection[T]) replace(ctx context.Context, id string, item T) (*T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return nil, apperr.NewNotFound(c.resource, id)
	}
	c.items[id] = c.clone(item)
	copied := c.clone(item)
	return &copied, nil
}

func (c *collection[T]) remove(ctx context.Context, id string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return apperr.NewNotFound(c.resource, id)
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneRoom(r db.Room) db.Room {
	r.Amenities = append([]string(nil), r.Amenities...)
	return r
}

func cloneGuest(g db.Guest) db.Guest {
	g.Preferences = append([]string(nil), g.Preferences...)
	return g
}

func cloneReservation(r db.Reservation) db.Reservation {
	r.RoomIDs = append([]string(nil), r.RoomIDs...)
	return r
}

func cloneNotification(n db.Notification) db.Notification { return n }

type RoomStore struct {
	c *collection[db.Room]
}

func NewRoomStore(latency time.Duration) *RoomStore {
	return &RoomStore{c: newCollection("room", latency, cloneRoom)}
}

func (s *RoomStore) GetAll(ctx context.Context) ([]db.Room, error) { return s.c.all(ctx) }

func (s *RoomStore) GetByID(ctx context.Context, id string) (*db.Room, error) {
	return s.c.get(ctx, id)
}

func (s *RoomStore) Create(ctx context.Context, room db.Room) (*db.Room, error) {
	room.ID = uuid.NewString()
	return s.c.insert(ctx, room.ID, room)
}

func (s *RoomStore) Update(ctx context.Context, id string, room db.Room) (*db.Room, error) {
	room.ID = id
	return s.c.replace(ctx, id, room)
}

func (s *RoomStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

type GuestStore struct {
	c *collection[db.Guest]
}

func NewGuestStore(latency time.Duration) *GuestStore {
	return &GuestStore{c: newCollection("guest", latency, cloneGuest)}
}

func (s *GuestStore) GetAll(ctx context.Context) ([]db.Guest, error) { return s.c.all(ctx) }

func (s *GuestStore) GetByID(ctx context.Context, id string) (*db.Guest, error) {
	return s.c.get(ctx, id)
}

func (s *GuestStore) Create(ctx context.Context, guest db.Guest) (*db.Guest, error) {
	guest.ID = uuid.NewString()
	return s.c.insert(ctx, guest.ID, guest)
}

func (s *GuestStore) Update(ctx context.Context, id string, guest db.Guest) (*db.Guest, error) {
	guest.ID = id
	return s.c.replace(ctx, id, guest)
}

func (s *GuestStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

type ReservationStore struct {
	c *collection[db.Reservation]
}

func NewReservationStore(latency time.Duration) *ReservationStore {
	return &ReservationStore{c: newCollection("reservation", latency, cloneReservation)}
}

func (s *ReservationStore) GetAll(ctx context.Context) ([]db.Reservation, error) {
	return s.c.all(ctx)
}

func (s *ReservationStore) GetByID(ctx context.Context, id string) (*db.Reservation, error) {
	return s.c.get(ctx, id)
}

func (s *ReservationStore) Create(ctx context.Context, res db.Reservation) (*db.Reservation, error) {
	res.ID = uuid.NewString()
	return s.c.insert(ctx, res.ID, res)
}

func (s *ReservationStore) Update(ctx context.Context, id string, res db.Reservation) (*db.Reservation, error) {
	res.ID = id
	return s.c.replace(ctx, id, res)
}

func (s *ReservationStore) Delete(ctx context.Context, id string) error {
	return s.c.remove(ctx, id)
}

type NotificationStore struct {
	c *collection[db.Notification]
}

func NewNotificationStore(latency time.Duration) *NotificationStore {
	return &NotificationStore{c: newCollection("notification", latency, cloneNotification)}
}

func (s *NotificationStore) GetAll(ctx context.Context) ([]db.Notification, error) {
	return s.c.all(ctx)
}

func (s *NotificationStore) GetByID(ctx context.Context, id string) (*db.Notification, error) {
	return s.c.get(ctx, id)
}

func (s *NotificationStore) Create(ctx context.Context, n db.Notification) (*db.Notification, error) {
	n.ID = uuid.NewString()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	return s.c.insert(ctx, n.ID, n)
}

func (s *NotificationStore) Update(ctx context.Context, id string, n db.Notification) (*db.Notification, error) {
	n.ID = id
	return s.c.replace(ctx, id, n)
}

func (s *NotificationStore) Delete(ctx context.Context, id string) error {
	return s.c.remove(ctx, id)
}

// ProfileStore holds the single seeded staff profile.
type ProfileStore struct {
	mu      sync.RWMutex
	profile db.StaffProfile
	latency time.Duration
}

func NewProfileStore(latency time.Duration, profile db.StaffProfile) *ProfileStore {
	return &ProfileStore{profile: profile, latency: latency}
}

func (s *ProfileStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ProfileStore) Get(ctx context.Context) (*db.StaffProfile, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := s.profile
	return &copied, nil
}

func (s *ProfileStore) Update(ctx context.Context, profile db.StaffProfile) (*db.StaffProfile, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.ID = s.profile.ID
	s.profile = profile
	copied := s.profile
	return &copied, nil
}

// New returns empty stores with the given artificial latency.
func New(latency time.Duration) *store.Stores {
	return &store.Stores{
		Rooms:         NewRoomStore(latency),
		Guests:        NewGuestStore(latency),
		Reservations:  NewReservationStore(latency),
		Notifications: NewNotificationStore(latency),
		Profile:       NewProfileStore(latency, defaultProfile()),
	}
}
