package profile

import "errors"

var (
	// ErrNotFound indicates no profile has been saved for the identity.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidInput indicates a request failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
