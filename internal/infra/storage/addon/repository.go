package addon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/dbmetrics"
	"github.com/drufus/serenity/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var addonColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"per_night",
	"active",
	"sort_order",
}

// Repository reads the add-on catalog
type Repository struct {
	db DBExecutor
}

// NewRepository creates an add-on repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive returns the active catalog in display order
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Addon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addons").
		Where(squirrel.Eq{"active": true}).
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAddons(rows)
}

// GetActiveByIDs returns the active add-ons matching the given ids, keyed by
// id. Used to snapshot catalog prices at booking time; a requested id missing
// from the result means the add-on does not exist or is no longer active.
func (r *Repository) GetActiveByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Addon, error) {
	if len(ids) == 0 {
		return map[int64]*domain.Addon{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addons").
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addons, err := scanAddons(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.Addon, len(addons))
	for _, a := range addons {
		byID[a.ID] = a
	}
	return byID, nil
}

func scanAddons(rows *sql.Rows) ([]*domain.Addon, error) {
	addons := make([]*domain.Addon, 0)
	for rows.Next() {
		var a domain.Addon
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Description,
			&a.Price,
			&a.PerNight,
			&a.Active,
			&a.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAddons - scan row: %v", ErrScanRow, err)
		}
		addons = append(addons, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAddons - rows error: %v", ErrScanRow, err)
	}
	return addons, nil
}
