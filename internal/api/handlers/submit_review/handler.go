package submit_review

import (
	"errors"
	"net/http"

	"github.com/drufus/serenity/internal/api/handlers"
	"github.com/drufus/serenity/internal/service/property"
	"github.com/drufus/serenity/internal/service/property/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid review details"
)

type Handler struct {
	service PropertyService
	logger  Logger
}

func NewHandler(service PropertyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type submitResponse struct {
	Status string `json:"status"`
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SubmitReview(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, property.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reviews - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, submitResponse{Status: "pending review"})
}
