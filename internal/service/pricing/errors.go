package pricing

import "errors"

var (
	// ErrInvalidDateRange is returned when check-out is not after check-in
	ErrInvalidDateRange = errors.New("pricing: check-out must be after check-in")

	// ErrAddonNotFound is returned when a selected add-on does not exist or
	// is no longer active
	ErrAddonNotFound = errors.New("pricing: addon not found")

	// ErrNegativeDiscount is returned when a negative discount is requested
	ErrNegativeDiscount = errors.New("pricing: discount must not be negative")

	// ErrUnavailable is returned when the store cannot be read. Callers must
	// surface this instead of assuming base rates or empty results.
	ErrUnavailable = errors.New("pricing: unable to read pricing data")

	// ErrInternal is returned on unexpected internal failures
	ErrInternal = errors.New("pricing: internal error")
)
