package list_addons

import (
	"context"

	"github.com/drufus/serenity/internal/service/property/models"
)

type PropertyService interface {
	ListAddons(ctx context.Context) ([]models.AddonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
