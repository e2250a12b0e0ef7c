package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/drufus/serenity/internal/domain"
	blockedRepo "github.com/drufus/serenity/internal/infra/storage/blockeddate"
	bookingRepo "github.com/drufus/serenity/internal/infra/storage/booking"
	settingsStore "github.com/drufus/serenity/internal/infra/storage/settings"
	"github.com/drufus/serenity/internal/service/bookings/models"
	"github.com/drufus/serenity/internal/service/pricing"
	"github.com/drufus/serenity/pkg/types"
)

// maxCodeRetries bounds how many times the whole transaction is retried when
// a freshly generated confirmation code collides with an existing one.
const maxCodeRetries = 3

const paymentCurrency = "usd"

// UseCase is the booking creation orchestrator. All writes — the booking
// row, its add-on lines and one blocked-date row per night — happen in a
// single serializable transaction, with the availability re-check holding
// row locks so two guests can never book the same night.
type UseCase struct {
	bookingRepo  BookingRepository
	blockedRepo  BlockedDateRepository
	settingsRepo SettingsRepository
	pricingSvc   PricingService
	payments     PaymentsClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedRepo BlockedDateRepository,
	settingsRepo SettingsRepository,
	pricingSvc PricingService,
	payments PaymentsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockedRepo:  blockedRepo,
		settingsRepo: settingsRepo,
		pricingSvc:   pricingSvc,
		payments:     payments,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the request, then runs the booking transaction: re-check
// availability under lock, price the stay server-side, create the payment
// intent, insert the booking with its add-on snapshot lines and block every
// night of the stay. A confirmation-code collision retries the whole
// transaction with a new code, at most maxCodeRetries times.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	discount, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsStore.ErrSettingsNotFound) {
			uc.logger.Error("CreateBooking: property settings row is missing")
			return nil, fmt.Errorf("%w: property settings missing", ErrInternal)
		}
		uc.logger.Error("CreateBooking: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: load settings: %v", ErrUnavailable, err)
	}
	if req.NumGuests > settings.Sleeps {
		return nil, fmt.Errorf("%w: property sleeps %d", ErrTooManyGuests, settings.Sleeps)
	}

	quoteInput := pricing.QuoteInput{
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		DiscountAmount: discount,
	}
	for _, sel := range req.Addons {
		quoteInput.Addons = append(quoteInput.Addons, pricing.AddonSelection{
			AddonID:  sel.AddonID,
			Quantity: sel.Quantity,
		})
	}

	var created *domain.Booking
	var createdAddons []domain.BookingAddon

	for attempt := 1; attempt <= maxCodeRetries; attempt++ {
		code, err := domain.GenerateConfirmationCode()
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate confirmation code: %v", err)
			return nil, fmt.Errorf("%w: generate confirmation code: %v", ErrInternal, err)
		}

		created, createdAddons, err = uc.runBookingTx(ctx, req, quoteInput, code)
		if err == nil {
			break
		}
		if errors.Is(err, bookingRepo.ErrDuplicateConfirmationCode) && attempt < maxCodeRetries {
			uc.logger.Warn("CreateBooking: confirmation code %s collided, retrying (attempt %d)",
				code, attempt)
			continue
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking %s (%s..%s, %d nights, total %s)",
		created.ConfirmationCode, created.CheckIn, created.CheckOut,
		created.NumNights, created.TotalAmount.StringFixed(2))

	return &Response{Booking: models.FromDomainBooking(created, createdAddons)}, nil
}

func (uc *UseCase) runBookingTx(
	ctx context.Context,
	req *Request,
	quoteInput pricing.QuoteInput,
	code string,
) (*domain.Booking, []domain.BookingAddon, error) {
	var created *domain.Booking
	var createdAddons []domain.BookingAddon

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Availability re-check. Inside the transaction the range query
		// appends FOR UPDATE, so concurrent attempts on overlapping nights
		// serialize on these rows.
		blocked, err := uc.blockedRepo.GetDatesInRange(txCtx, req.CheckIn, req.CheckOut)
		if err != nil {
			return fmt.Errorf("%w: fetch blocked dates: %v", ErrUnavailable, err)
		}
		blockedSet := make(map[types.DateString]struct{}, len(blocked))
		for _, d := range blocked {
			blockedSet[d] = struct{}{}
		}
		numNights := req.CheckIn.NightsUntil(req.CheckOut)
		for _, night := range req.CheckIn.NightsOf(numNights) {
			if _, ok := blockedSet[night]; ok {
				return fmt.Errorf("%w: night %s is blocked", ErrDatesNotAvailable, night)
			}
		}

		// Authoritative pricing, computed inside the transaction so the
		// rates read are consistent with the rows being written.
		quote, err := uc.pricingSvc.Quote(txCtx, quoteInput)
		if err != nil {
			switch {
			case errors.Is(err, pricing.ErrAddonNotFound):
				return fmt.Errorf("%w: %v", ErrAddonNotFound, err)
			case errors.Is(err, pricing.ErrInvalidDateRange), errors.Is(err, pricing.ErrNegativeDiscount):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			case errors.Is(err, pricing.ErrUnavailable):
				return fmt.Errorf("%w: %v", ErrUnavailable, err)
			default:
				return fmt.Errorf("%w: quote: %v", ErrInternal, err)
			}
		}
		if numNights < quote.MinNights {
			return fmt.Errorf("%w: minimum stay is %d nights", ErrMinNights, quote.MinNights)
		}

		// The stub intent is local and instant. A real provider call must
		// move out of the transaction first: it would hold the FOR UPDATE
		// locks across network I/O, and a rollback here would strand the
		// intent at the provider.
		intentID, err := uc.payments.CreateIntent(txCtx, quote.Breakdown.TotalAmount, paymentCurrency)
		if err != nil {
			return fmt.Errorf("%w: create payment intent: %v", ErrUnavailable, err)
		}

		booking := &domain.Booking{
			ConfirmationCode: code,
			GuestName:        req.GuestName,
			GuestEmail:       req.GuestEmail,
			GuestPhone:       req.GuestPhone,
			CheckIn:          req.CheckIn,
			CheckOut:         req.CheckOut,
			NumGuests:        req.NumGuests,
			NumNights:        numNights,
			Subtotal:         quote.Breakdown.Subtotal,
			CleaningFee:      quote.Breakdown.CleaningFee,
			AddonTotal:       quote.Breakdown.AddonTotal,
			TaxAmount:        quote.Breakdown.TaxAmount,
			DiscountAmount:   quote.Breakdown.DiscountAmount,
			TotalAmount:      quote.Breakdown.TotalAmount,
			SpecialRequests:  req.SpecialRequests,
			Status:           domain.StatusPending,
			PaymentIntentID:  &intentID,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateConfirmationCode) {
				return err
			}
			return fmt.Errorf("%w: insert booking: %v", ErrInternal, err)
		}

		createdAddons = createdAddons[:0]
		for _, line := range quote.AddonLines {
			line.BookingID = created.ID
			createdAddons = append(createdAddons, line)
		}
		if len(createdAddons) > 0 {
			if err := uc.bookingRepo.CreateAddons(txCtx, createdAddons); err != nil {
				return fmt.Errorf("%w: insert booking addons: %v", ErrInternal, err)
			}
		}

		blocks := make([]domain.BlockedDate, 0, numNights)
		for _, night := range created.BlockedNights() {
			blocks = append(blocks, domain.BlockedDate{
				Date:      night,
				Reason:    domain.BlockReasonBooked,
				BookingID: &created.ID,
			})
		}
		if err := uc.blockedRepo.CreateBatch(txCtx, blocks); err != nil {
			// FOR UPDATE locks only rows that already exist; a concurrent
			// insert of the same night surfaces here as a unique violation.
			if errors.Is(err, blockedRepo.ErrDateAlreadyBlocked) {
				return fmt.Errorf("%w: %v", ErrDatesNoLongerAvailable, err)
			}
			return fmt.Errorf("%w: insert blocked dates: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return created, createdAddons, nil
}
