package check_availability

import "github.com/drufus/serenity/pkg/types"

// Request is a candidate date range
type Request struct {
	CheckIn  types.DateString
	CheckOut types.DateString
}

// Response reports whether every night of the stay is free
type Response struct {
	Available bool
	NumNights int
}
