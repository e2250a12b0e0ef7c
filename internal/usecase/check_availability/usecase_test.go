package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drufus/serenity/pkg/types"
)

type fakeBlockedRepo struct {
	blocked []types.DateString
	err     error
}

func (f *fakeBlockedRepo) GetDatesInRange(_ context.Context, _, _ types.DateString) ([]types.DateString, error) {
	return f.blocked, f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBlockedRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_AllNightsFree(t *testing.T) {
	uc := newTestUseCase(&fakeBlockedRepo{})

	res, err := uc.Execute(context.Background(), &Request{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-04",
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 3, res.NumNights)
}

func TestExecute_BlockedNight(t *testing.T) {
	uc := newTestUseCase(&fakeBlockedRepo{blocked: []types.DateString{"2026-07-02"}})

	res, err := uc.Execute(context.Background(), &Request{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-04",
	})
	require.NoError(t, err)
	assert.False(t, res.Available)
}

func TestExecute_CheckoutDateBlockedIsStillAvailable(t *testing.T) {
	// A stay ending on a blocked date is fine: the check-out day is not a
	// night of the stay.
	uc := newTestUseCase(&fakeBlockedRepo{blocked: []types.DateString{"2026-07-04"}})

	res, err := uc.Execute(context.Background(), &Request{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-04",
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestExecute_CheckinOnBlockedDate(t *testing.T) {
	uc := newTestUseCase(&fakeBlockedRepo{blocked: []types.DateString{"2026-07-01"}})

	res, err := uc.Execute(context.Background(), &Request{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-04",
	})
	require.NoError(t, err)
	assert.False(t, res.Available)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newTestUseCase(&fakeBlockedRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  "2026-07-04",
		CheckOut: "2026-07-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.Execute(context.Background(), &Request{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_PastCheckIn(t *testing.T) {
	uc := newTestUseCase(&fakeBlockedRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  "2026-05-01",
		CheckOut: "2026-05-04",
	})
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_SameDayCheckInAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeBlockedRepo{})

	res, err := uc.Execute(context.Background(), &Request{
		CheckIn:  "2026-06-01",
		CheckOut: "2026-06-03",
	})
	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestExecute_MalformedDate(t *testing.T) {
	uc := newTestUseCase(&fakeBlockedRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  "07/01/2026",
		CheckOut: "2026-07-04",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreFailureIsNotAvailable(t *testing.T) {
	uc := newTestUseCase(&fakeBlockedRepo{err: errors.New("connection refused")})

	_, err := uc.Execute(context.Background(), &Request{
		CheckIn:  "2026-07-01",
		CheckOut: "2026-07-04",
	})
	assert.ErrorIs(t, err, ErrUnavailable)
}
