package check_availability

import "errors"

var (
	// ErrInvalidInput is returned for malformed dates
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidDateRange is returned when check-out is not after check-in
	ErrInvalidDateRange = errors.New("check_availability: check-out must be after check-in")

	// ErrDateInPast is returned when check-in is before today
	ErrDateInPast = errors.New("check_availability: check-in is in the past")

	// ErrUnavailable is returned when the blocked-dates query fails. The
	// caller must not treat this as "available".
	ErrUnavailable = errors.New("check_availability: unable to verify availability")
)
