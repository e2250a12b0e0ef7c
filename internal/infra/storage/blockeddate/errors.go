package blockeddate

import "errors"

var (
	// ErrDateAlreadyBlocked is returned when a bulk insert collides with an
	// existing blocked night (unique index on date). This is how a race-lost
	// booking attempt surfaces.
	ErrDateAlreadyBlocked = errors.New("blockeddate.repository: date already blocked")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("blockeddate.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("blockeddate.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("blockeddate.repository: failed to scan row")
)
