package create_contact

import (
	"errors"
	"net/http"

	"github.com/drufus/serenity/internal/api/handlers"
	"github.com/drufus/serenity/internal/service/property"
	"github.com/drufus/serenity/internal/service/property/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "name, email and message are required"
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

type contactResponse struct {
	Status string `json:"status"`
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SubmitContact(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, property.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /contact - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, contactResponse{Status: "received"})
}
