package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when the property settings row is missing
	ErrSettingsNotFound = errors.New("settings.repository: property settings not found")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
