package list_gallery

import (
	"context"

	"github.com/drufus/serenity/internal/service/property/models"
)

type PropertyService interface {
	ListGallery(ctx context.Context, category *string) ([]models.GalleryImageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
