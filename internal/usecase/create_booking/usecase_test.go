package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drufus/serenity/internal/domain"
	blockedRepo "github.com/drufus/serenity/internal/infra/storage/blockeddate"
	bookingRepo "github.com/drufus/serenity/internal/infra/storage/booking"
	"github.com/drufus/serenity/internal/service/pricing"
	"github.com/drufus/serenity/pkg/types"
)

type fakeBookingRepo struct {
	created      []*domain.Booking
	createErrs   []error // popped per Create call
	addonInserts [][]domain.BookingAddon
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	stored := *b
	stored.ID = int64(len(f.created) + 1)
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeBookingRepo) CreateAddons(_ context.Context, addons []domain.BookingAddon) error {
	f.addonInserts = append(f.addonInserts, addons)
	return nil
}

type fakeBlockedRepo struct {
	blocked   []types.DateString
	fetchErr  error
	insertErr error
	inserted  [][]domain.BlockedDate
}

func (f *fakeBlockedRepo) GetDatesInRange(_ context.Context, _, _ types.DateString) ([]types.DateString, error) {
	return f.blocked, f.fetchErr
}

func (f *fakeBlockedRepo) CreateBatch(_ context.Context, blocks []domain.BlockedDate) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, blocks)
	return nil
}

type fakeSettingsRepo struct {
	settings *domain.PropertySettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.PropertySettings, error) {
	return f.settings, f.err
}

type fakePricing struct {
	quote *pricing.Quote
	err   error
}

func (f *fakePricing) Quote(_ context.Context, _ pricing.QuoteInput) (*pricing.Quote, error) {
	return f.quote, f.err
}

type fakePayments struct{ calls int }

func (f *fakePayments) CreateIntent(_ context.Context, _ decimal.Decimal, _ string) (string, error) {
	f.calls++
	return "stub_pi_test", nil
}

// fakeTxManager runs the function inline and counts rollbacks so tests can
// assert nothing is half-committed.
type fakeTxManager struct {
	begun     int
	rollbacks int
	commits   int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.begun++
	if err := fn(ctx); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testQuote() *pricing.Quote {
	return &pricing.Quote{
		Breakdown: domain.PriceBreakdown{
			NumNights:   3,
			Subtotal:    decimal.NewFromInt(600),
			CleaningFee: decimal.NewFromInt(150),
			TaxAmount:   decimal.NewFromInt(45),
			TotalAmount: decimal.NewFromInt(795),
		},
		AddonLines: []domain.BookingAddon{
			{AddonID: 1, Quantity: 1, Price: decimal.NewFromInt(25)},
		},
		MinNights: 2,
	}
}

func validRequest() *Request {
	return &Request{
		GuestName:  "Jamie Rivera",
		GuestEmail: "jamie@example.com",
		GuestPhone: "+1-555-0100",
		CheckIn:    "2026-07-01",
		CheckOut:   "2026-07-04",
		NumGuests:  4,
		Addons:     []AddonSelection{{AddonID: 1, Quantity: 1}},
	}
}

type harness struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	blocked  *fakeBlockedRepo
	payments *fakePayments
	tx       *fakeTxManager
}

func newHarness() *harness {
	h := &harness{
		bookings: &fakeBookingRepo{},
		blocked:  &fakeBlockedRepo{},
		payments: &fakePayments{},
		tx:       &fakeTxManager{},
	}
	settings := &fakeSettingsRepo{settings: &domain.PropertySettings{
		Sleeps:    8,
		MinNights: 2,
	}}
	h.uc = NewUseCase(h.bookings, h.blocked, settings, &fakePricing{quote: testQuote()}, h.payments, h.tx, nopLogger{})
	h.uc.timeProvider = fixedTime{t: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	return h
}

func TestExecute_HappyPath(t *testing.T) {
	h := newHarness()

	res, err := h.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	b := res.Booking
	assert.Len(t, b.ConfirmationCode, domain.ConfirmationCodeLength)
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "795.00", b.TotalAmount)
	require.NotNil(t, b.PaymentIntentID)
	assert.Equal(t, "stub_pi_test", *b.PaymentIntentID)

	// One blocked row per night, check-out excluded, tagged with the booking.
	require.Len(t, h.blocked.inserted, 1)
	blocks := h.blocked.inserted[0]
	require.Len(t, blocks, 3)
	assert.Equal(t, types.DateString("2026-07-01"), blocks[0].Date)
	assert.Equal(t, types.DateString("2026-07-03"), blocks[2].Date)
	for _, blk := range blocks {
		assert.Equal(t, domain.BlockReasonBooked, blk.Reason)
		require.NotNil(t, blk.BookingID)
		assert.Equal(t, int64(1), *blk.BookingID)
	}

	// Add-on snapshot lines carry the created booking's ID.
	require.Len(t, h.bookings.addonInserts, 1)
	assert.Equal(t, int64(1), h.bookings.addonInserts[0][0].BookingID)

	assert.Equal(t, 1, h.tx.commits)
	assert.Equal(t, 0, h.tx.rollbacks)
	assert.Equal(t, 1, h.payments.calls)
}

func TestExecute_NightAlreadyBlocked(t *testing.T) {
	h := newHarness()
	h.blocked.blocked = []types.DateString{"2026-07-02"}

	_, err := h.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatesNotAvailable)

	assert.Empty(t, h.bookings.created)
	assert.Equal(t, 1, h.tx.rollbacks)
}

func TestExecute_RaceLostOnBlockInsert(t *testing.T) {
	h := newHarness()
	h.blocked.insertErr = blockedRepo.ErrDateAlreadyBlocked

	_, err := h.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatesNoLongerAvailable)
	assert.Equal(t, 1, h.tx.rollbacks)
}

func TestExecute_ConfirmationCodeCollisionRetries(t *testing.T) {
	h := newHarness()
	h.bookings.createErrs = []error{bookingRepo.ErrDuplicateConfirmationCode, nil}

	res, err := h.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, res.Booking)

	assert.Equal(t, 2, h.tx.begun)
	assert.Equal(t, 1, h.tx.rollbacks)
	assert.Equal(t, 1, h.tx.commits)
}

func TestExecute_ConfirmationCodeCollisionExhausted(t *testing.T) {
	h := newHarness()
	h.bookings.createErrs = []error{
		bookingRepo.ErrDuplicateConfirmationCode,
		bookingRepo.ErrDuplicateConfirmationCode,
		bookingRepo.ErrDuplicateConfirmationCode,
	}

	_, err := h.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, bookingRepo.ErrDuplicateConfirmationCode)
	assert.Equal(t, maxCodeRetries, h.tx.begun)
}

func TestExecute_MinNights(t *testing.T) {
	h := newHarness()

	req := validRequest()
	req.CheckOut = "2026-07-02" // 1 night, minimum is 2

	_, err := h.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMinNights)
	assert.Empty(t, h.bookings.created)
}

func TestExecute_TooManyGuests(t *testing.T) {
	h := newHarness()

	req := validRequest()
	req.NumGuests = 9

	_, err := h.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooManyGuests)
	assert.Equal(t, 0, h.tx.begun)
}

func TestExecute_ValidationFailures(t *testing.T) {
	h := newHarness()

	req := validRequest()
	req.GuestEmail = "not-an-email"
	_, err := h.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn
	_, err = h.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	req = validRequest()
	req.CheckIn, req.CheckOut = "2026-05-01", "2026-05-04"
	_, err = h.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)

	req = validRequest()
	req.DiscountAmount = "-10"
	_, err = h.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 0, h.tx.begun)
}

func TestExecute_BlockedFetchFailure(t *testing.T) {
	h := newHarness()
	h.blocked.fetchErr = errors.New("connection refused")

	_, err := h.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestExecute_PricingAddonNotFound(t *testing.T) {
	h := newHarness()
	settings := &fakeSettingsRepo{settings: &domain.PropertySettings{Sleeps: 8, MinNights: 2}}
	h.uc = NewUseCase(h.bookings, h.blocked, settings,
		&fakePricing{err: pricing.ErrAddonNotFound}, h.payments, h.tx, nopLogger{})
	h.uc.timeProvider = fixedTime{t: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}

	_, err := h.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAddonNotFound)
}
