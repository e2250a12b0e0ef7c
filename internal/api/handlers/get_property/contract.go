package get_property

import (
	"context"

	"github.com/drufus/serenity/internal/service/property/models"
)

type PropertyService interface {
	GetSettings(ctx context.Context) (*models.PropertyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
