package pricing

import (
	"context"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/types"
)

// SettingsRepository reads the property settings
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.PropertySettings, error)
}

// SeasonalRateRepository resolves seasonal rate overrides
type SeasonalRateRepository interface {
	GetActiveForDate(ctx context.Context, date types.DateString) (*domain.SeasonalRate, error)
}

// AddonRepository reads the add-on catalog
type AddonRepository interface {
	GetActiveByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Addon, error)
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
