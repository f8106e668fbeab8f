package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"frontdesk/internal/entities"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/utils"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeAndValidate decodes the JSON body into dst and runs struct validation,
// reporting failures as ValidationError so they map to 400.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.NewValidation("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.NewValidation("%s", err)
	}
	return nil
}

func parseReservationInput(req entities.ReservationRequest) (entities.CreateReservationInput, error) {
	var in entities.CreateReservationInput
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return in, apperr.NewValidation("checkIn must be a YYYY-MM-DD date")
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return in, apperr.NewValidation("checkOut must be a YYYY-MM-DD date")
	}
	return entities.CreateReservationInput{
		GuestID:        req.GuestID,
		RoomIDs:        req.RoomIDs,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Notes:          req.Notes,
		PaymentMethod:  req.PaymentMethod,
		DiscountAmount: req.DiscountAmount,
		AdditionalFees: req.AdditionalFees,
	}, nil
}
