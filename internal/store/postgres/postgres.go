// Package postgres implements the store contract on database/sql with lib/pq.
// It is an opt-in backend selected when DATABASE_URL is set; the schema lives
// in scripts/schema.sql.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"frontdesk/internal/db"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/store"
)

// New returns stores backed by the given database handle.
func New(database *sql.DB) *store.Stores {
	return &store.Stores{
		Rooms:         &RoomStore{DB: database},
		Guests:        &GuestStore{DB: database},
		Reservations:  &ReservationStore{DB: database},
		Notifications: &NotificationStore{DB: database},
		Profile:       &ProfileStore{DB: database},
	}
}

type RoomStore struct {
	DB *sql.DB
}

const roomColumns = `id, number, floor, type, price, capacity, amenities, status, COALESCE(current_guest_id, '')`

func scanRoom(row interface{ Scan(...interface{}) error }) (*db.Room, error) {
	var room db.Room
	err := row.Scan(&room.ID, &room.Number, &room.Floor, &room.Type, &room.Price,
		&room.Capacity, pq.Array(&room.Amenities), &room.Status, &room.CurrentGuestID)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomStore) GetAll(ctx context.Context) ([]db.Room, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []db.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning room: %w", err)
		}
		rooms = append(rooms, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomStore) GetByID(ctx context.Context, id string) (*db.Room, error) {
	room, err := scanRoom(s.DB.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NewNotFound("room", id)
		}
		return nil, fmt.Errorf("querying room: %w", err)
	}
	return room, nil
}

func (s *RoomStore) Create(ctx context.Context, room db.Room) (*db.Room, error) {
	room.ID = uuid.NewString()
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO rooms (id, number, floor, type, price, capacity, amenities, status, current_guest_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))`,
		room.ID, room.Number, room.Floor, room.Type, room.Price,
		room.Capacity, pq.Array(room.Amenities), room.Status, room.CurrentGuestID)
	if err != nil {
		return nil, fmt.Errorf("inserting room: %w", err)
	}
	return &room, nil
}

func (s *RoomStore) Update(ctx context.Context, id string, room db.Room) (*db.Room, error) {
	room.ID = id
	result, err := s.DB.ExecContext(ctx, `
		UPDATE rooms
		SET number = $2, floor = $3, type = $4, price = $5, capacity = $6,
		    amenities = $7, status = $8, current_guest_id = NULLIF($9, '')
		WHERE id = $1`,
		id, room.Number, room.Floor, room.Type, room.Price,
		room.Capacity, pq.Array(room.Amenities), room.Status, room.CurrentGuestID)
	if err != nil {
		return nil, fmt.Errorf("updating room: %w", err)
	}
	if err := requireRow(result, "room", id); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomStore) Delete(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}
	return requireRow(result, "room", id)
}

type GuestStore struct {
	DB *sql.DB
}

const guestColumns = `id, first_name, last_name, email, phone, id_document, address, preferences, guest_type`

func scanGuest(row interface{ Scan(...interface{}) error }) (*db.Guest, error) {
	var guest db.Guest
	err := row.Scan(&guest.ID, &guest.FirstName, &guest.LastName, &guest.Email, &guest.Phone,
		&guest.IDDocument, &guest.Address, pq.Array(&guest.Preferences), &guest.GuestType)
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *GuestStore) GetAll(ctx context.Context) ([]db.Guest, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+guestColumns+` FROM guests ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("querying guests: %w", err)
	}
	defer rows.Close()

	var guests []db.Guest
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning guest: %w", err)
		}
		guests = append(guests, *guest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating guests: %w", err)
	}
	return guests, nil
}

func (s *GuestStore) GetByID(ctx context.Context, id string) (*db.Guest, error) {
	guest, err := scanGuest(s.DB.QueryRowContext(ctx, `SELECT `+guestColumns+` FROM guests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NewNotFound("guest", id)
		}
		return nil, fmt.Errorf("querying guest: %w", err)
	}
	return guest, nil
}

func (s *GuestStore) Create(ctx context.Context, guest db.Guest) (*db.Guest, error) {
	guest.ID = uuid.NewString()
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO guests (id, first_name, last_name, email, phone, id_document, address, preferences, guest_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		guest.ID, guest.FirstName, guest.LastName, guest.Email, guest.Phone,
		guest.IDDocument, guest.Address, pq.Array(guest.Preferences), guest.GuestType)
	if err != nil {
		return nil, fmt.Errorf("inserting guest: %w", err)
	}
	return &guest, nil
}

func (s *GuestStore) Update(ctx context.Context, id string, guest db.Guest) (*db.Guest, error) {
	guest.ID = id
	result, err := s.DB.ExecContext(ctx, `
		UPDATE guests
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
		    id_document = $6, address = $7, preferences = $8, guest_type = $9
		WHERE id = $1`,
		id, guest.FirstName, guest.LastName, guest.Email, guest.Phone,
		guest.IDDocument, guest.Address, pq.Array(guest.Preferences), guest.GuestType)
	if err != nil {
		return nil, fmt.Errorf("updating guest: %w", err)
	}
	if err := requireRow(result, "guest", id); err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *GuestStore) Delete(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting guest: %w", err)
	}
	return requireRow(result, "guest", id)
}

type ReservationStore struct {
	DB *sql.DB
}

const reservationColumns = `id, guest_id, room_ids, check_in, check_out, status, notes,
	payment_method, payment_status, discount_amount, additional_fees, total_amount, created_at, updated_at`

func scanReservation(row interface{ Scan(...interface{}) error }) (*db.Reservation, error) {
	var res db.Reservation
	err := row.Scan(&res.ID, &res.GuestID, pq.Array(&res.RoomIDs), &res.CheckIn, &res.CheckOut,
		&res.Status, &res.Notes, &res.PaymentMethod, &res.PaymentStatus,
		&res.DiscountAmount, &res.AdditionalFees, &res.TotalAmount, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ReservationStore) GetAll(ctx context.Context) ([]db.Reservation, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY check_in DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reservation: %w", err)
		}
		reservations = append(reservations, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reservations: %w", err)
	}
	return reservations, nil
}

func (s *ReservationStore) GetByID(ctx context.Context, id string) (*db.Reservation, error) {
	res, err := scanReservation(s.DB.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NewNotFound("reservation", id)
		}
		return nil, fmt.Errorf("querying reservation: %w", err)
	}
	return res, nil
}

func (s *ReservationStore) Create(ctx context.Context, res db.Reservation) (*db.Reservation, error) {
	res.ID = uuid.NewString()
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO reservations (id, guest_id, room_ids, check_in, check_out, status, notes,
			payment_method, payment_status, discount_amount, additional_fees, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at`,
		res.ID, res.GuestID, pq.Array(res.RoomIDs), res.CheckIn, res.CheckOut, res.Status, res.Notes,
		res.PaymentMethod, res.PaymentStatus, res.DiscountAmount, res.AdditionalFees, res.TotalAmount,
	).Scan(&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting reservation: %w", err)
	}
	return &res, nil
}

func (s *ReservationStore) Update(ctx context.Context, id string, res db.Reservation) (*db.Reservation, error) {
	res.ID = id
	err := s.DB.QueryRowContext(ctx, `
		UPDATE reservations
		SET guest_id = $2, room_ids = $3, check_in = $4, check_out = $5, status = $6, notes = $7,
		    payment_method = $8, payment_status = $9, discount_amount = $10, additional_fees = $11,
		    total_amount = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		id, res.GuestID, pq.Array(res.RoomIDs), res.CheckIn, res.CheckOut, res.Status, res.Notes,
		res.PaymentMethod, res.PaymentStatus, res.DiscountAmount, res.AdditionalFees, res.TotalAmount,
	).Scan(&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NewNotFound("reservation", id)
		}
		return nil, fmt.Errorf("updating reservation: %w", err)
	}
	return &res, nil
}

func (s *ReservationStore) Delete(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting reservation: %w", err)
	}
	return requireRow(result, "reservation", id)
}

type NotificationStore struct {
	DB *sql.DB
}

const notificationColumns = `id, type, message, read, created_at`

func (s *NotificationStore) GetAll(ctx context.Context) ([]db.Notification, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+notificationColumns+` FROM notifications ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var notifications []db.Notification
	for rows.Next() {
		var n db.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationStore) GetByID(ctx context.Context, id string) (*db.Notification, error) {
	var n db.Notification
	err := s.DB.QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id).
		Scan(&n.ID, &n.Type, &n.Message, &n.Read, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NewNotFound("notification", id)
		}
		return nil, fmt.Errorf("querying notification: %w", err)
	}
	return &n, nil
}

func (s *NotificationStore) Create(ctx context.Context, n db.Notification) (*db.Notification, error) {
	n.ID = uuid.NewString()
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO notifications (id, type, message, read, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at`,
		n.ID, n.Type, n.Message, n.Read).Scan(&n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting notification: %w", err)
	}
	return &n, nil
}

func (s *NotificationStore) Update(ctx context.Context, id string, n db.Notification) (*db.Notification, error) {
	n.ID = id
	result, err := s.DB.ExecContext(ctx,
		`UPDATE notifications SET type = $2, message = $3, read = $4 WHERE id = $1`,
		id, n.Type, n.Message, n.Read)
	if err != nil {
		return nil, fmt.Errorf("updating notification: %w", err)
	}
	if err := requireRow(result, "notification", id); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NotificationStore) Delete(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting notification: %w", err)
	}
	return requireRow(result, "notification", id)
}

// ProfileStore persists the single staff profile row.
type ProfileStore struct {
	DB *sql.DB
}

func (s *ProfileStore) Get(ctx context.Context) (*db.StaffProfile, error) {
	var p db.StaffProfile
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, role, department, join_date, bio,
		       address_street, address_city, address_state, address_zip, address_country,
		       pref_notifications, pref_email_updates, pref_theme
		FROM staff_profile LIMIT 1`).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Role, &p.Department, &p.JoinDate, &p.Bio,
		&p.Address.Street, &p.Address.City, &p.Address.State, &p.Address.ZipCode, &p.Address.Country,
		&p.Preferences.Notifications, &p.Preferences.EmailUpdates, &p.Preferences.Theme)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NewNotFound("profile", "")
		}
		return nil, fmt.Errorf("querying staff profile: %w", err)
	}
	return &p, nil
}

func (s *ProfileStore) Update(ctx context.Context, p db.StaffProfile) (*db.StaffProfile, error) {
	result, err := s.DB.ExecContext(ctx, `
		UPDATE staff_profile
		SET first_name = $2, last_name = $3, email = $4, phone = $5, role = $6, department = $7,
		    join_date = $8, bio = $9, address_street = $10, address_city = $11, address_state = $12,
		    address_zip = $13, address_country = $14, pref_notifications = $15,
		    pref_email_updates = $16, pref_theme = $17
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.Role, p.Department,
		p.JoinDate, p.Bio, p.Address.Street, p.Address.City, p.Address.State,
		p.Address.ZipCode, p.Address.Country, p.Preferences.Notifications,
		p.Preferences.EmailUpdates, p.Preferences.Theme)
	if err != nil {
		return nil, fmt.Errorf("updating staff profile: %w", err)
	}
	if err := requireRow(result, "profile", p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func requireRow(result sql.Result, resource, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.NewNotFound(resource, id)
	}
	return nil
}
