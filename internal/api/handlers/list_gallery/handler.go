package list_gallery

import (
	"errors"
	"net/http"

	"github.com/drufus/serenity/internal/api/handlers"
	"github.com/drufus/serenity/internal/service/property"
	"github.com/drufus/serenity/internal/service/property/models"
)

const msgInvalidCategory = "unknown gallery category"

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

type galleryResponse struct {
	Images []models.GalleryImageResponse `json:"images"`
}

// Handle GET /api/v1/gallery?category=exterior
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	images, err := h.service.ListGallery(r.Context(), category)
	if err != nil {
		switch {
		case errors.Is(err, property.ErrInvalidCategory):
			h.logger.Warn("GET /gallery - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /gallery - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, galleryResponse{Images: images})
}
