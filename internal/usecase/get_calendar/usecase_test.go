package get_calendar

import (
	"context"
	"errors"
	"testing"

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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_ReturnsBlockedDates(t *testing.T) {
	uc := NewUseCase(&fakeBlockedRepo{blocked: []types.DateString{"2026-07-02", "2026-07-03"}}, nopLogger{})

	res, err := uc.Execute(context.Background(), &Request{From: "2026-07-01", To: "2026-07-31"})
	require.NoError(t, err)
	assert.Len(t, res.BlockedDates, 2)
}

func TestExecute_SingleDayWindow(t *testing.T) {
	uc := NewUseCase(&fakeBlockedRepo{}, nopLogger{})

	res, err := uc.Execute(context.Background(), &Request{From: "2026-07-01", To: "2026-07-01"})
	require.NoError(t, err)
	assert.Empty(t, res.BlockedDates)
}

func TestExecute_InvalidWindow(t *testing.T) {
	uc := NewUseCase(&fakeBlockedRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{From: "2026-07-31", To: "2026-07-01"})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{From: "2026-01-01", To: "2027-06-01"})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{From: "bad", To: "2026-07-01"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreFailure(t *testing.T) {
	uc := NewUseCase(&fakeBlockedRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{From: "2026-07-01", To: "2026-07-31"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
