package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/dbmetrics"
	"github.com/drufus/serenity/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository reads the singleton property settings row
type Repository struct {
	db DBExecutor
}

// NewRepository creates a settings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the property settings. The table holds exactly one row; this
// service never mutates it.
func (r *Repository) Get(ctx context.Context) (*domain.PropertySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"property_name",
		"sleeps",
		"bedrooms",
		"bathrooms",
		"square_feet",
		"parking_spaces",
		"pets_allowed",
		"base_nightly_rate",
		"cleaning_fee",
		"tax_rate",
		"min_nights",
		"damage_deposit",
		"check_in_time",
		"check_out_time",
		"cancellation_policy",
		"house_rules",
	).
		From("property_settings").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.PropertySettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.PropertyName,
		&s.Sleeps,
		&s.Bedrooms,
		&s.Bathrooms,
		&s.SquareFeet,
		&s.ParkingSpaces,
		&s.PetsAllowed,
		&s.BaseNightlyRate,
		&s.CleaningFee,
		&s.TaxRate,
		&s.MinNights,
		&s.DamageDeposit,
		&s.CheckInTime,
		&s.CheckOutTime,
		&s.CancellationPolicy,
		&s.HouseRules,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}
