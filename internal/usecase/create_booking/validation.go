package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/types"
)

var validate = validator.New()

// validateRequest checks the structural and date constraints of the request
// and returns the parsed discount. Capacity and minimum-stay checks need the
// property settings and happen in the use case.
func validateRequest(req *Request, now time.Time) (decimal.Decimal, error) {
	if err := validate.Struct(req); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.TrimSpace(strings.ToLower(req.GuestEmail))
	req.GuestPhone = strings.TrimSpace(req.GuestPhone)
	if req.GuestName == "" {
		return decimal.Zero, fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}

	if err := req.CheckIn.Validate(); err != nil {
		return decimal.Zero, fmt.Errorf("%w: check-in: %v", ErrInvalidInput, err)
	}
	if err := req.CheckOut.Validate(); err != nil {
		return decimal.Zero, fmt.Errorf("%w: check-out: %v", ErrInvalidInput, err)
	}
	if !req.CheckOut.After(req.CheckIn) {
		return decimal.Zero, ErrInvalidDateRange
	}
	if req.CheckIn.Before(types.NewDateString(now)) {
		return decimal.Zero, ErrDateInPast
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return decimal.Zero, fmt.Errorf("%w: special requests too long", ErrInvalidInput)
	}

	discount := decimal.Zero
	if req.DiscountAmount != "" {
		parsed, err := decimal.NewFromString(req.DiscountAmount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: discount amount: %v", ErrInvalidInput, err)
		}
		if parsed.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: discount must not be negative", ErrInvalidInput)
		}
		discount = parsed
	}

	return discount, nil
}
