package addon

import "errors"

var (
	// ErrAddonNotFound is returned when a requested add-on does not exist
	// or is inactive
	ErrAddonNotFound = errors.New("addon.repository: addon not found")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("addon.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("addon.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("addon.repository: failed to scan row")
)
