package seasonalrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/dbmetrics"
	"github.com/drufus/serenity/pkg/psqlbuilder"
	"github.com/drufus/serenity/pkg/types"
)

type DBExecutor = dbmetrics.DBExecutor

var rateColumns = []string{
	"id",
	"name",
	"start_date",
	"end_date",
	"nightly_rate",
	"min_nights",
	"active",
	"created_at",
}

// Repository reads seasonal nightly-rate overrides
type Repository struct {
	db DBExecutor
}

// NewRepository creates a seasonal-rate repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveForDate resolves the active seasonal rate covering the date.
// When overlapping active ranges exist the narrowest range wins, then the
// most recently created. Returns ErrRateNotFound when no active rate covers
// the date; callers fall back to the base nightly rate.
func (r *Repository) GetActiveForDate(ctx context.Context, date types.DateString) (*domain.SeasonalRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rateColumns...).
		From("seasonal_rates").
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		OrderBy("(end_date - start_date) ASC", "created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForDate - build select query: %v", ErrBuildQuery, err)
	}

	rate, err := scanRate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForDate - scan rate: %v", ErrScanRow, err)
	}

	return rate, nil
}

func scanRate(row *sql.Row) (*domain.SeasonalRate, error) {
	var rate domain.SeasonalRate
	var createdAt sql.NullTime

	err := row.Scan(
		&rate.ID,
		&rate.Name,
		&rate.StartDate,
		&rate.EndDate,
		&rate.NightlyRate,
		&rate.MinNights,
		&rate.Active,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	rate.CreatedAt = createdAt.Time
	return &rate, nil
}
