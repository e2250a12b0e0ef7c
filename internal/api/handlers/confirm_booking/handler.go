package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/drufus/serenity/internal/api/handlers"
	"github.com/drufus/serenity/internal/service/bookings"
)

const (
	msgInvalidCode = "invalid confirmation code"
	msgNotFound    = "booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{code}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		handlers.RespondBadRequest(w, msgInvalidCode)
		return
	}

	booking, err := h.service.ConfirmByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{code}/confirm - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /bookings/{code}/confirm - Failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{code}/confirm - Booking status: code=%s, status=%s", code, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
