package get_booking

import (
	"context"

	"github.com/drufus/serenity/internal/service/bookings/models"
)

type BookingService interface {
	GetByCode(ctx context.Context, code string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
