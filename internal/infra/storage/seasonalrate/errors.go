package seasonalrate

import "errors"

var (
	// ErrRateNotFound is returned when no active seasonal rate covers the date
	ErrRateNotFound = errors.New("seasonalrate.repository: no active rate for date")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("seasonalrate.repository: failed to build query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("seasonalrate.repository: failed to scan row")
)
