package list_reviews

import (
	"context"

	"github.com/drufus/serenity/internal/service/property/models"
)

type PropertyService interface {
	ListReviews(ctx context.Context) ([]models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
