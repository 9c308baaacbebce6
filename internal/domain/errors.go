package domain

import "errors"

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrValidation      = errors.New("validation failed")
	ErrInvalidState    = errors.New("invalid booking state")
	ErrSeatLocked      = errors.New("seat is already locked")
)

var ErrFlightInUse = errors.New("flight is referenced by another flight")
