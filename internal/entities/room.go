package entities

type RoomRequest struct {
	Number    string   `json:"number" validate:"required"`
	Floor     int      `json:"floor"`
	Type      string   `json:"type" validate:"required"`
	Price     float64  `json:"price" validate:"gt=0"`
	Capacity  int      `json:"capacity" validate:"gt=0"`
	Amenities []string `json:"amenities"`
	Status    string   `json:"status"`
}

type RoomStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
