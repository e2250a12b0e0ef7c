package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/drufus/serenity/internal/domain"
	rateRepo "github.com/drufus/serenity/internal/infra/storage/seasonalrate"
	"github.com/drufus/serenity/pkg/types"
)

// Service computes itemized price breakdowns for a stay. It is side-effect
// free: the booking wizard re-quotes on every input change and the
// orchestrator calls it again inside the booking transaction, where the
// repository reads automatically join the transaction.
type Service struct {
	settingsRepo SettingsRepository
	rateRepo     SeasonalRateRepository
	addonRepo    AddonRepository
	logger       Logger
}

// NewService creates a pricing service
func NewService(
	settingsRepo SettingsRepository,
	rateRepo SeasonalRateRepository,
	addonRepo AddonRepository,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		rateRepo:     rateRepo,
		addonRepo:    addonRepo,
		logger:       logger,
	}
}

// ResolveNightlyRate returns the rate for a single night: the active seasonal
// override covering the date when one exists, the base nightly rate otherwise.
// A store read failure is surfaced as ErrUnavailable, never silently mapped
// to the base rate.
func (s *Service) ResolveNightlyRate(ctx context.Context, date types.DateString, settings *domain.PropertySettings) (decimal.Decimal, error) {
	rate, err := s.rateRepo.GetActiveForDate(ctx, date)
	if err != nil {
		if errors.Is(err, rateRepo.ErrRateNotFound) {
			return settings.BaseNightlyRate, nil
		}
		s.logger.Error("ResolveNightlyRate: failed to fetch seasonal rate for %s: %v", date, err)
		return decimal.Zero, fmt.Errorf("%w: ResolveNightlyRate - fetch seasonal rate: %v", ErrUnavailable, err)
	}
	return rate.NightlyRate, nil
}

// Quote computes the full price breakdown for a stay.
//
//	subtotal   = sum of per-night resolved rates
//	beforeTax  = subtotal + cleaning fee + addon total - discount
//	tax        = beforeTax * tax rate, rounded to cents
//	total      = beforeTax + tax
//
// Add-on prices are snapshotted from the catalog, never taken from the
// caller; per-night add-ons multiply by the night count.
func (s *Service) Quote(ctx context.Context, input QuoteInput) (*Quote, error) {
	numNights := input.CheckIn.NightsUntil(input.CheckOut)
	if numNights <= 0 {
		return nil, ErrInvalidDateRange
	}
	if input.DiscountAmount.IsNegative() {
		return nil, ErrNegativeDiscount
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Quote: failed to read property settings: %v", err)
		return nil, fmt.Errorf("%w: Quote - read settings: %v", ErrUnavailable, err)
	}

	// Per-night resolution: each night is independent and may cross a
	// seasonal boundary mid-stay.
	subtotal := decimal.Zero
	for _, night := range input.CheckIn.NightsOf(numNights) {
		rate, err := s.ResolveNightlyRate(ctx, night, settings)
		if err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(rate)
	}

	addonLines, addonTotal, err := s.resolveAddons(ctx, input.Addons, numNights)
	if err != nil {
		return nil, err
	}

	breakdown := domain.PriceBreakdown{
		NumNights:      numNights,
		Subtotal:       subtotal,
		CleaningFee:    settings.CleaningFee,
		AddonTotal:     addonTotal,
		DiscountAmount: input.DiscountAmount,
	}
	beforeTax := breakdown.BeforeTax()
	breakdown.TaxAmount = beforeTax.Mul(settings.TaxRate).Round(2)
	breakdown.TotalAmount = beforeTax.Add(breakdown.TaxAmount)

	return &Quote{
		Breakdown:  breakdown,
		AddonLines: addonLines,
		MinNights:  s.effectiveMinNights(ctx, input.CheckIn, settings),
	}, nil
}

// resolveAddons snapshots catalog prices for the selected add-ons and
// computes their total
func (s *Service) resolveAddons(ctx context.Context, selections []AddonSelection, numNights int) ([]domain.BookingAddon, decimal.Decimal, error) {
	if len(selections) == 0 {
		return nil, decimal.Zero, nil
	}

	ids := make([]int64, 0, len(selections))
	for _, sel := range selections {
		ids = append(ids, sel.AddonID)
	}

	catalog, err := s.addonRepo.GetActiveByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("resolveAddons: failed to read addon catalog: %v", err)
		return nil, decimal.Zero, fmt.Errorf("%w: resolveAddons - read catalog: %v", ErrUnavailable, err)
	}

	lines := make([]domain.BookingAddon, 0, len(selections))
	total := decimal.Zero
	for _, sel := range selections {
		addon, ok := catalog[sel.AddonID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: addon id=%d", ErrAddonNotFound, sel.AddonID)
		}

		qty := sel.Quantity
		if qty <= 0 {
			qty = 1
		}

		lineTotal := addon.Price.Mul(decimal.NewFromInt(int64(qty)))
		if addon.PerNight {
			lineTotal = lineTotal.Mul(decimal.NewFromInt(int64(numNights)))
		}
		total = total.Add(lineTotal)

		lines = append(lines, domain.BookingAddon{
			AddonID:  addon.ID,
			Quantity: qty,
			Price:    addon.Price,
		})
	}

	return lines, total, nil
}

// effectiveMinNights applies a seasonal minimum-nights override when an
// active rate covers check-in. A read failure here falls back to the base
// minimum: the override only tightens validation, it never affects money.
func (s *Service) effectiveMinNights(ctx context.Context, checkIn types.DateString, settings *domain.PropertySettings) int {
	rate, err := s.rateRepo.GetActiveForDate(ctx, checkIn)
	if err != nil {
		if !errors.Is(err, rateRepo.ErrRateNotFound) {
			s.logger.Warn("effectiveMinNights: failed to fetch seasonal rate for %s: %v", checkIn, err)
		}
		return settings.MinNights
	}
	if rate.MinNights != nil && *rate.MinNights > settings.MinNights {
		return *rate.MinNights
	}
	return settings.MinNights
}
