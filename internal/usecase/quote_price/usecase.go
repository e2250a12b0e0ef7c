package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/drufus/serenity/internal/service/pricing"
)

// UseCase computes a price quote for the booking wizard. Read-only and
// idempotent; overlapping in-flight quotes are safe and the client keeps
// only the most recently issued result.
type UseCase struct {
	pricingSvc PricingService
	logger     Logger
}

// NewUseCase creates the use case
func NewUseCase(pricingSvc PricingService, logger Logger) *UseCase {
	return &UseCase{pricingSvc: pricingSvc, logger: logger}
}

// Execute validates the request and delegates to the pricing service
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	selections := make([]pricing.AddonSelection, 0, len(req.Addons))
	for _, a := range req.Addons {
		selections = append(selections, pricing.AddonSelection{AddonID: a.AddonID, Quantity: a.Quantity})
	}

	quote, err := uc.pricingSvc.Quote(ctx, pricing.QuoteInput{
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Addons:         selections,
		DiscountAmount: req.DiscountAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidDateRange):
			return nil, ErrInvalidDateRange
		case errors.Is(err, pricing.ErrAddonNotFound):
			return nil, fmt.Errorf("%w: %v", ErrAddonNotFound, err)
		case errors.Is(err, pricing.ErrUnavailable):
			uc.logger.Error("QuotePrice: pricing data unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		default:
			uc.logger.Error("QuotePrice: pricing failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("QuotePrice: %s..%s nights=%d total=%s",
		req.CheckIn, req.CheckOut, quote.Breakdown.NumNights, quote.Breakdown.TotalAmount.StringFixed(2))

	return &Response{
		Breakdown: quote.Breakdown,
		MinNights: quote.MinNights,
	}, nil
}

func validateRequest(req *Request) error {
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
	if req.DiscountAmount.IsNegative() {
		return fmt.Errorf("%w: discount must not be negative", ErrInvalidInput)
	}
	for _, a := range req.Addons {
		if a.AddonID <= 0 {
			return fmt.Errorf("%w: addon id must be positive", ErrInvalidInput)
		}
		if a.Quantity < 0 {
			return fmt.Errorf("%w: addon quantity must not be negative", ErrInvalidInput)
		}
	}
	return nil
}
