// Package get_calendar serves the blocked dates of a window so the wizard's
// date picker can grey out unavailable nights.
package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/drufus/serenity/pkg/types"
)

// MaxWindowDays caps the calendar window a single request may ask for
const MaxWindowDays = 400

var (
	// ErrInvalidInput is returned for malformed dates
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInvalidRange is returned when the window is inverted or too large
	ErrInvalidRange = errors.New("get_calendar: invalid date range")

	// ErrUnavailable is returned when the blocked-dates query fails
	ErrUnavailable = errors.New("get_calendar: unable to read calendar")
)

// Request is an inclusive calendar window
type Request struct {
	From types.DateString
	To   types.DateString
}

// Response lists the blocked dates within the window, ascending
type Response struct {
	BlockedDates []types.DateString
}

// UseCase reads the blocked-date calendar
type UseCase struct {
	blockedRepo BlockedDateRepository
	logger      Logger
}

// NewUseCase creates the use case
func NewUseCase(blockedRepo BlockedDateRepository, logger Logger) *UseCase {
	return &UseCase{blockedRepo: blockedRepo, logger: logger}
}

// Execute returns the blocked dates in [From, To]
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := req.From.Validate(); err != nil {
		return nil, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
	}
	if err := req.To.Validate(); err != nil {
		return nil, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
	}
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: to precedes from", ErrInvalidRange)
	}
	if req.From.NightsUntil(req.To) > MaxWindowDays {
		return nil, fmt.Errorf("%w: window exceeds %d days", ErrInvalidRange, MaxWindowDays)
	}

	dates, err := uc.blockedRepo.GetDatesInRange(ctx, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to fetch blocked dates %s..%s: %v", req.From, req.To, err)
		return nil, fmt.Errorf("%w: fetch blocked dates: %v", ErrUnavailable, err)
	}

	return &Response{BlockedDates: dates}, nil
}
