package list_reviews

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

type reviewsResponse struct {
	Reviews []models.ReviewResponse `json:"reviews"`
}

// Handle GET /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		h.logger.Error("GET /reviews - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reviewsResponse{Reviews: reviews})
}
