package quote_price

import (
	"context"

	"github.com/drufus/serenity/internal/service/pricing"
)

// PricingService computes price breakdowns
type PricingService interface {
	Quote(ctx context.Context, input pricing.QuoteInput) (*pricing.Quote, error)
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
