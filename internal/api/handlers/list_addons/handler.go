package list_addons

import (
	"net/http"

	"github.com/drufus/serenity/internal/api/handlers"
	"github.com/drufus/serenity/internal/service/property/models"
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

type addonsResponse struct {
	Addons []models.AddonResponse `json:"addons"`
}

// Handle GET /api/v1/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addons, err := h.service.ListAddons(r.Context())
	if err != nil {
		h.logger.Error("GET /addons - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, addonsResponse{Addons: addons})
}
