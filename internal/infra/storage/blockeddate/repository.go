package blockeddate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/dbmetrics"
	"github.com/drufus/serenity/pkg/psqlbuilder"
	"github.com/drufus/serenity/pkg/types"
)

const pqUniqueViolation = "23505"

// Repository persists blocked calendar nights
type Repository struct {
	db DBExecutor
}

// NewRepository creates a blocked-date repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDatesInRange returns the blocked dates within [start, end], both ends
// inclusive at the query layer. Inside a transaction the rows are locked with
// FOR UPDATE so a concurrent booking of the same nights serializes behind us.
func (r *Repository) GetDatesInRange(ctx context.Context, start, end types.DateString) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("date").
		From("blocked_dates").
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		OrderBy("date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDatesInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDatesInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]types.DateString, 0)
	for rows.Next() {
		var d types.DateString
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: GetDatesInRange - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDatesInRange - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// CreateBatch inserts one row per blocked night in a single statement.
// Must run inside the booking transaction: the unique index on date makes
// the second of two racing bookings fail here, rolling back its whole
// transaction, which is what keeps double-booking impossible.
func (r *Repository) CreateBatch(ctx context.Context, blocks []domain.BlockedDate) error {
	if len(blocks) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("blocked_dates").
		Columns("date", "reason", "booking_id")
	for _, b := range blocks {
		insert = insert.Values(b.Date, b.Reason, b.BookingID)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrDateAlreadyBlocked
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
