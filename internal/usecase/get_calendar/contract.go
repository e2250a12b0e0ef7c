package get_calendar

import (
	"context"

	"github.com/drufus/serenity/pkg/types"
)

// BlockedDateRepository is the storage surface the use case needs
type BlockedDateRepository interface {
	GetDatesInRange(ctx context.Context, start, end types.DateString) ([]types.DateString, error)
}

// Logger is the logging surface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
