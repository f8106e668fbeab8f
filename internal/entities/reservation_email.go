package entities

type ReservationEmailData struct {
	GuestName         string
	ReservationID     string
	RoomNumbers       string
	CheckInFormatted  string
	CheckOutFormatted string
	Nights            int
	Total             float64
	Status            string
	CurrentYear       int
}
