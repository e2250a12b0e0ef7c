package bookings

import (
	"context"
	"time"

	"github.com/drufus/serenity/internal/domain"
)

// BookingRepository is the storage surface the service needs
type BookingRepository interface {
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error)
	GetAddonsByBookingID(ctx context.Context, bookingID int64) ([]domain.BookingAddon, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdateAgreement(ctx context.Context, id int64, signed bool, signedAt time.Time) error
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
