package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the lookup
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateConfirmationCode is returned when an insert collides with
	// an existing confirmation code (unique index violation)
	ErrDuplicateConfirmationCode = errors.New("booking.repository: confirmation code already exists")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
