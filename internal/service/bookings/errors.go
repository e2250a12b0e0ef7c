package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the
	// confirmation code
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInternal is returned on unexpected internal failures
	ErrInternal = errors.New("bookings: internal error")
)
