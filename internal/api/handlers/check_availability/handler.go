package check_availability

import (
	"errors"
	"net/http"

	"github.com/drufus/serenity/internal/api/handlers"
	checkAvailability "github.com/drufus/serenity/internal/usecase/check_availability"
	"github.com/drufus/serenity/pkg/types"
)

const (
	msgMissingDates    = "checkIn and checkOut query parameters are required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange    = "check-out must be after check-in"
	msgDateInPast      = "check-in date is in the past"
	msgTemporarilyDown = "availability is temporarily unavailable, please retry"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

type availabilityResponse struct {
	Available bool `json:"available"`
	NumNights int  `json:"numNights"`
}

// Handle GET /api/v1/availability?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkIn := r.URL.Query().Get("checkIn")
	checkOut := r.URL.Query().Get("checkOut")
	if checkIn == "" || checkOut == "" {
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	req := &checkAvailability.Request{
		CheckIn:  types.DateString(checkIn),
		CheckOut: types.DateString(checkOut),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, checkAvailability.ErrUnavailable):
			h.logger.Error("GET /availability - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgTemporarilyDown)

		default:
			h.logger.Error("GET /availability - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, availabilityResponse{
		Available: result.Available,
		NumNights: result.NumNights,
	})
}
