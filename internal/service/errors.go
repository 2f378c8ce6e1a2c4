package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNotPermitted is returned when an authenticated user attempts to act
	// on a note owned by someone else.
	ErrNotPermitted = errors.New("operation not permitted")
)
