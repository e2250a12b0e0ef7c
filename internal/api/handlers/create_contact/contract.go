package create_contact

import (
	"context"

	"github.com/drufus/serenity/internal/service/property/models"
)

type PropertyService interface {
	SubmitContact(ctx context.Context, req *models.ContactRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
