package get_calendar

import (
	"errors"
	"net/http"

	"github.com/drufus/serenity/internal/api/handlers"
	getCalendar "github.com/drufus/serenity/internal/usecase/get_calendar"
	"github.com/drufus/serenity/pkg/types"
)

const (
	msgMissingWindow   = "from and to query parameters are required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidWindow   = "invalid calendar window"
	msgTemporarilyDown = "calendar is temporarily unavailable, please retry"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

type calendarResponse struct {
	BlockedDates []string `json:"blockedDates"`
}

// Handle GET /api/v1/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		handlers.RespondBadRequest(w, msgMissingWindow)
		return
	}

	req := &getCalendar.Request{
		From: types.DateString(from),
		To:   types.DateString(to),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getCalendar.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, getCalendar.ErrUnavailable):
			h.logger.Error("GET /calendar - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgTemporarilyDown)

		default:
			h.logger.Error("GET /calendar - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := calendarResponse{BlockedDates: make([]string, 0, len(result.BlockedDates))}
	for _, d := range result.BlockedDates {
		resp.BlockedDates = append(resp.BlockedDates, d.String())
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
