package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/dbmetrics"
	"github.com/drufus/serenity/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("review.repository: failed to scan row")
)

type DBExecutor = dbmetrics.DBExecutor

// Repository reads and writes guest reviews
type Repository struct {
	db DBExecutor
}

// NewRepository creates a review repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListApproved returns approved reviews, newest stay first
func (r *Repository) ListApproved(ctx context.Context) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"guest_name",
		"rating",
		"title",
		"comment",
		"stay_date",
		"approved",
		"created_at",
	).
		From("reviews").
		Where(squirrel.Eq{"approved": true}).
		OrderBy("stay_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListApproved - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListApproved - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		var createdAt sql.NullTime
		err := rows.Scan(
			&rev.ID,
			&rev.GuestName,
			&rev.Rating,
			&rev.Title,
			&rev.Comment,
			&rev.StayDate,
			&rev.Approved,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListApproved - scan row: %v", ErrScanRow, err)
		}
		rev.CreatedAt = createdAt.Time
		reviews = append(reviews, &rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListApproved - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// Create inserts a new review. Reviews arrive unapproved and only show up on
// the site once moderated.
func (r *Repository) Create(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("guest_name", "rating", "title", "comment", "stay_date", "approved").
		Values(rev.GuestName, rev.Rating, rev.Title, rev.Comment, rev.StayDate, false).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rev.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rev.Approved = false
	rev.CreatedAt = createdAt.Time
	return rev, nil
}
