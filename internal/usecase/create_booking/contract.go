package create_booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/internal/service/pricing"
	"github.com/drufus/serenity/pkg/types"
)

// BookingRepository is the booking storage surface the use case needs
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	CreateAddons(ctx context.Context, addons []domain.BookingAddon) error
}

// BlockedDateRepository is the blocked-dates storage surface
type BlockedDateRepository interface {
	GetDatesInRange(ctx context.Context, start, end types.DateString) ([]types.DateString, error)
	CreateBatch(ctx context.Context, blocks []domain.BlockedDate) error
}

// SettingsRepository reads the property settings
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.PropertySettings, error)
}

// PricingService computes the authoritative price breakdown
type PricingService interface {
	Quote(ctx context.Context, input pricing.QuoteInput) (*pricing.Quote, error)
}

// PaymentsClient creates (stub) payment intents
type PaymentsClient interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (string, error)
}

// TransactionManager runs the write sequence atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
