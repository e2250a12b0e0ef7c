package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/dbmetrics"
	"github.com/drufus/serenity/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("contact.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("contact.repository: failed to execute query")
)

type DBExecutor = dbmetrics.DBExecutor

// Repository persists contact-form submissions
type Repository struct {
	db DBExecutor
}

// NewRepository creates a contact-submission repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a contact submission
func (r *Repository) Create(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contact_submissions").
		Columns("name", "email", "phone", "message").
		Values(sub.Name, sub.Email, sub.Phone, sub.Message).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sub.CreatedAt = createdAt.Time
	return sub, nil
}
