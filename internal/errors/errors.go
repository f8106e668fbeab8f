package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError means the referenced entity does not exist in its store.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError covers malformed or missing input: empty room lists,
// non-positive amounts, invalid date ranges, unavailable rooms on create.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError is returned for any reservation status change not in
// the permitted transition table.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// RoomUnavailableError is returned by quick check-in when the target room is
// not in the available state.
type RoomUnavailableError struct {
	RoomID string
	Status string
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %q is not available for check-in (status %q)", e.RoomID, e.Status)
}

// StatusCode maps a service error to the HTTP status the handler should return.
func StatusCode(err error) int {
	var (
		notFound    *NotFoundError
		validation  *ValidationError
		transition  *InvalidTransitionError
		unavailable *RoomUnavailableError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &transition), errors.As(err, &unavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes err as a JSON error body with the mapped status code.
func WriteJSON(w http.ResponseWriter, err error) {
	code := StatusCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal server error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
