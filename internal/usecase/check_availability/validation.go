package check_availability

import (
	"fmt"
	"time"

	"github.com/drufus/serenity/pkg/types"
)

func validateRequest(req *Request, now time.Time) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out are required", ErrInvalidInput)
	}
	if err := req.CheckIn.Validate(); err != nil {
		return fmt.Errorf("%w: check-in: %v", ErrInvalidInput, err)
	}
	if err := req.CheckOut.Validate(); err != nil {
		return fmt.Errorf("%w: check-out: %v", ErrInvalidInput, err)
	}
	if !req.CheckOut.After(req.CheckIn) {
		return ErrInvalidDateRange
	}
	if req.CheckIn.Before(types.NewDateString(now)) {
		return ErrDateInPast
	}
	return nil
}
