package quote_price

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInvalidDateRange is returned when check-out is not after check-in
	ErrInvalidDateRange = errors.New("quote_price: check-out must be after check-in")

	// ErrAddonNotFound is returned when a selected add-on does not exist
	ErrAddonNotFound = errors.New("quote_price: addon not found")

	// ErrUnavailable is returned when pricing data cannot be read
	ErrUnavailable = errors.New("quote_price: unable to read pricing data")

	// ErrInternal is returned on unexpected internal failures
	ErrInternal = errors.New("quote_price: internal error")
)
