package check_availability

import (
	"context"
	"fmt"

	"github.com/drufus/serenity/pkg/types"
)

// UseCase answers "can this date range be booked" for the wizard's date
// picker. The create-booking path re-checks inside its transaction; this
// check is advisory and read-only.
type UseCase struct {
	blockedRepo  BlockedDateRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(blockedRepo BlockedDateRepository, logger Logger) *UseCase {
	return &UseCase{
		blockedRepo:  blockedRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute checks every night in [checkIn, checkOut) against the blocked set.
// A store read failure is surfaced as ErrUnavailable, never as "available".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	numNights := req.CheckIn.NightsUntil(req.CheckOut)

	// The range query is inclusive on both ends; only nights strictly
	// before check-out are ever tested, so the check-out date itself never
	// blocks a stay.
	blocked, err := uc.blockedRepo.GetDatesInRange(ctx, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to fetch blocked dates %s..%s: %v",
			req.CheckIn, req.CheckOut, err)
		return nil, fmt.Errorf("%w: fetch blocked dates: %v", ErrUnavailable, err)
	}

	blockedSet := make(map[types.DateString]struct{}, len(blocked))
	for _, d := range blocked {
		blockedSet[d] = struct{}{}
	}

	for _, night := range req.CheckIn.NightsOf(numNights) {
		if _, ok := blockedSet[night]; ok {
			uc.logger.Info("CheckAvailability: %s..%s unavailable, night %s is blocked",
				req.CheckIn, req.CheckOut, night)
			return &Response{Available: false, NumNights: numNights}, nil
		}
	}

	return &Response{Available: true, NumNights: numNights}, nil
}
