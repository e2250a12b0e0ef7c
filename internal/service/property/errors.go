package property

import "errors"

var (
	// ErrSettingsNotFound is returned when the property settings row is
	// missing (a provisioning error, not a user error)
	ErrSettingsNotFound = errors.New("property: settings not found")

	// ErrInvalidCategory is returned for an unknown gallery category
	ErrInvalidCategory = errors.New("property: invalid gallery category")

	// ErrInvalidInput is returned for malformed submissions
	ErrInvalidInput = errors.New("property: invalid input data")

	// ErrInternal is returned on unexpected internal failures
	ErrInternal = errors.New("property: internal error")
)
