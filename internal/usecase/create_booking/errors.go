package create_booking

import "errors"

var (
	ErrInvalidInput           = errors.New("create_booking: invalid input")
	ErrInvalidDateRange       = errors.New("create_booking: check-out must be after check-in")
	ErrDateInPast             = errors.New("create_booking: check-in date is in the past")
	ErrMinNights              = errors.New("create_booking: stay is shorter than the minimum")
	ErrTooManyGuests          = errors.New("create_booking: guest count exceeds property capacity")
	ErrAddonNotFound          = errors.New("create_booking: addon not found or inactive")
	ErrDatesNotAvailable      = errors.New("create_booking: requested dates are not available")
	ErrDatesNoLongerAvailable = errors.New("create_booking: dates were taken while booking")
	ErrUnavailable            = errors.New("create_booking: service unavailable")
	ErrInternal               = errors.New("create_booking: internal error")
)
