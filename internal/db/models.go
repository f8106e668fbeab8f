package db

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked-in"
	ReservationCheckedOut ReservationStatus = "checked-out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is permitted.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCheckedOut || s == ReservationCancelled
}

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"

	PaymentMethodCash = "cash"
)

type Room struct {
	ID             string     `json:"id"`
	Number         string     `json:"number"`
	Floor          int        `json:"floor"`
	Type           string     `json:"type"`
	Price          float64    `json:"price"`
	Capacity       int        `json:"capacity"`
	Amenities      []string   `json:"amenities"`
	Status         RoomStatus `json:"status"`
	CurrentGuestID string     `json:"currentGuestId,omitempty"`
}

type Guest struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	IDDocument  string   `json:"idDocument,omitempty"`
	Address     string   `json:"address,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
	GuestType   string   `json:"guestType,omitempty"`
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// Reservation links a guest to one or more rooms for a date range.
// TotalAmount is derived: it is always recomputed from the room prices,
// fees and discount, never taken from client input.
type Reservation struct {
	ID             string            `json:"id"`
	GuestID        string            `json:"guestId"`
	RoomIDs        []string          `json:"roomIds"`
	CheckIn        time.Time         `json:"checkIn"`
	CheckOut       time.Time         `json:"checkOut"`
	Status         ReservationStatus `json:"status"`
	Notes          string            `json:"notes,omitempty"`
	PaymentMethod  string            `json:"paymentMethod,omitempty"`
	PaymentStatus  string            `json:"paymentStatus"`
	DiscountAmount float64           `json:"discountAmount"`
	AdditionalFees float64           `json:"additionalFees"`
	TotalAmount    float64           `json:"totalAmount"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
	NotificationError   = "error"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProfileAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type ProfilePreferences struct {
	Notifications bool   `json:"notifications"`
	EmailUpdates  bool   `json:"emailUpdates"`
	Theme         string `json:"theme"`
}

// StaffProfile is the front-desk user shown on the profile screen. A single
// record is seeded; there is no account management.
type StaffProfile struct {
	ID          string             `json:"id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Role        string             `json:"role"`
	Department  string             `json:"department"`
	JoinDate    string             `json:"joinDate"`
	Bio         string             `json:"bio,omitempty"`
	Address     ProfileAddress     `json:"address"`
	Preferences ProfilePreferences `json:"preferences"`
}
