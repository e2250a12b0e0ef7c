package create_booking

import (
	"errors"
	"net/http"

	"github.com/drufus/serenity/internal/api/handlers"
	createBooking "github.com/drufus/serenity/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid booking details"
	msgInvalidRange       = "check-out must be after check-in"
	msgDateInPast         = "check-in date is in the past"
	msgMinNights          = "stay is shorter than the minimum number of nights"
	msgTooManyGuests      = "guest count exceeds property capacity"
	msgAddonNotFound      = "one or more selected add-ons are not available"
	msgDatesNotAvailable  = "the requested dates are no longer available"
	msgTemporarilyDown    = "booking is temporarily unavailable, please retry"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createBooking.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrMinNights):
			handlers.RespondBadRequest(w, msgMinNights)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrAddonNotFound):
			handlers.RespondBadRequest(w, msgAddonNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrDatesNotAvailable),
			errors.Is(err, createBooking.ErrDatesNoLongerAvailable):
			h.logger.Warn("POST /bookings - Dates not available: %s..%s", req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgDatesNotAvailable)

		case errors.Is(err, createBooking.ErrUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgTemporarilyDown)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: code=%s, %s..%s",
		result.Booking.ConfirmationCode, req.CheckIn, req.CheckOut)
	handlers.RespondJSON(w, http.StatusCreated, result.Booking)
}
