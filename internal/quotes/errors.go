package quotes

import "errors"

var (
	// ErrMissingFields is returned when a required field is absent.
	ErrMissingFields = errors.New("quotes: required fields missing")

	// ErrInvalidEmail is returned when the email does not look like an address.
	ErrInvalidEmail = errors.New("quotes: invalid email format")
)
