package entities

type GuestRequest struct {
	FirstName   string   `json:"firstName" validate:"required"`
	LastName    string   `json:"lastName" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone"`
	IDDocument  string   `json:"idDocument"`
	Address     string   `json:"address"`
	Preferences []string `json:"preferences"`
	GuestType   string   `json:"guestType"`
}
