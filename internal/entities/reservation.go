package entities

import (
	"time"

	"frontdesk/internal/db"
)

// ReservationRequest carries the client-editable reservation fields. Dates are
// calendar days in YYYY-MM-DD form; they are parsed and validated at the API
// boundary before the service sees them.
type ReservationRequest struct {
	GuestID        string   `json:"guestId" validate:"required"`
	RoomIDs        []string `json:"roomIds"`
	CheckIn        string   `json:"checkIn" validate:"required"`
	CheckOut       string   `json:"checkOut" validate:"required"`
	Notes          string   `json:"notes"`
	PaymentMethod  string   `json:"paymentMethod"`
	DiscountAmount float64  `json:"discountAmount"`
	AdditionalFees float64  `json:"additionalFees"`
}

// CreateReservationInput is the parsed form of ReservationRequest used by the
// service layer.
type CreateReservationInput struct {
	GuestID        string
	RoomIDs        []string
	CheckIn        time.Time
	CheckOut       time.Time
	Notes          string
	PaymentMethod  string
	DiscountAmount float64
	AdditionalFees float64
}

// PaymentBreakdown itemizes the components of a reservation total.
type PaymentBreakdown struct {
	RoomCost       float64 `json:"roomCost"`
	AdditionalFees float64 `json:"additionalFees"`
	DiscountAmount float64 `json:"discountAmount"`
	Subtotal       float64 `json:"subtotal"`
	Taxes          float64 `json:"taxes"`
	ServiceFee     float64 `json:"serviceFee"`
	Total          float64 `json:"total"`
}

type ReservationResponse struct {
	db.Reservation
	Nights           int              `json:"nights"`
	PaymentBreakdown PaymentBreakdown `json:"paymentBreakdown"`
}

type QuickCheckInRequest struct {
	RoomID   string `json:"roomId" validate:"required"`
	GuestID  string `json:"guestId" validate:"required"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut" validate:"required"`
	Notes    string `json:"notes"`
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required"`
}

type ReservationsList struct {
	Total        int                   `json:"total"`
	Reservations []ReservationResponse `json:"reservations"`
}
