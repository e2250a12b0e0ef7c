package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drufus/serenity/internal/domain"
	bookingRepo "github.com/drufus/serenity/internal/infra/storage/booking"
)

type fakeRepo struct {
	booking *domain.Booking
	addons  []domain.BookingAddon

	statusUpdates    []domain.BookingStatus
	agreementUpdates []time.Time
}

func (f *fakeRepo) GetByConfirmationCode(_ context.Context, code string) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ConfirmationCode != code {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeRepo) GetAddonsByBookingID(_ context.Context, _ int64) ([]domain.BookingAddon, error) {
	return f.addons, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	f.booking.Status = status
	return nil
}

func (f *fakeRepo) UpdateAgreement(_ context.Context, _ int64, signed bool, signedAt time.Time) error {
	f.agreementUpdates = append(f.agreementUpdates, signedAt)
	f.booking.AgreementSigned = signed
	f.booking.AgreementSignedAt = &signedAt
	return nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:               7,
		ConfirmationCode: "WXYZ2345",
		GuestName:        "Jamie Rivera",
		CheckIn:          "2026-07-01",
		CheckOut:         "2026-07-04",
		NumNights:        3,
		TotalAmount:      decimal.NewFromInt(795),
		Status:           status,
	}
}

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTime{t: time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)}
	return svc
}

func TestGetByCode(t *testing.T) {
	repo := &fakeRepo{
		booking: testBooking(domain.StatusPending),
		addons:  []domain.BookingAddon{{AddonID: 1, Quantity: 2, Price: decimal.NewFromInt(25)}},
	}
	svc := newTestService(repo)

	res, err := svc.GetByCode(context.Background(), "WXYZ2345")
	require.NoError(t, err)
	assert.Equal(t, "WXYZ2345", res.ConfirmationCode)
	assert.Equal(t, "795.00", res.TotalAmount)
	require.Len(t, res.Addons, 1)
	assert.Equal(t, "25.00", res.Addons[0].Price)
}

func TestGetByCode_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.GetByCode(context.Background(), "NOPE2345")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmByCode_PendingTransitions(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusPending)}
	svc := newTestService(repo)

	res, err := svc.ConfirmByCode(context.Background(), "WXYZ2345")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.Status)
	assert.Equal(t, []domain.BookingStatus{domain.StatusConfirmed}, repo.statusUpdates)
}

func TestConfirmByCode_AlreadyConfirmedIsNoop(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
	svc := newTestService(repo)

	res, err := svc.ConfirmByCode(context.Background(), "WXYZ2345")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.Status)
	assert.Empty(t, repo.statusUpdates)
}

func TestConfirmByCode_CancelledStaysCancelled(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusCancelled)}
	svc := newTestService(repo)

	res, err := svc.ConfirmByCode(context.Background(), "WXYZ2345")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", res.Status)
	assert.Empty(t, repo.statusUpdates)
}

func TestSignAgreement(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
	svc := newTestService(repo)

	res, err := svc.SignAgreement(context.Background(), "WXYZ2345")
	require.NoError(t, err)
	assert.True(t, res.AgreementSigned)
	require.NotNil(t, res.AgreementSignedAt)
	assert.Len(t, repo.agreementUpdates, 1)
}

func TestSignAgreement_SecondSignKeepsOriginalTimestamp(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
	svc := newTestService(repo)

	first, err := svc.SignAgreement(context.Background(), "WXYZ2345")
	require.NoError(t, err)

	svc.timeProvider = fixedTime{t: time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC)}
	second, err := svc.SignAgreement(context.Background(), "WXYZ2345")
	require.NoError(t, err)

	assert.Equal(t, *first.AgreementSignedAt, *second.AgreementSignedAt)
	assert.Len(t, repo.agreementUpdates, 1)
}
