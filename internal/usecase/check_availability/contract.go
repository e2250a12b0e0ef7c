package check_availability

import (
	"context"
	"time"

	"github.com/drufus/serenity/pkg/types"
)

// BlockedDateRepository is the storage surface the use case needs
type BlockedDateRepository interface {
	GetDatesInRange(ctx context.Context, start, end types.DateString) ([]types.DateString, error)
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

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
