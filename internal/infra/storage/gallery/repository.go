package gallery

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
	ErrBuildQuery = errors.New("gallery.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute
	ErrExecQuery = errors.New("gallery.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("gallery.repository: failed to scan row")
)

type DBExecutor = dbmetrics.DBExecutor

// Repository reads gallery images
type Repository struct {
	db DBExecutor
}

// NewRepository creates a gallery repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns gallery images in display order, optionally filtered by
// category (nil means all categories).
func (r *Repository) List(ctx context.Context, category *string) ([]*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"category",
		"url",
		"thumbnail_url",
		"caption",
		"alt_text",
		"sort_order",
		"featured",
	).
		From("gallery_images").
		OrderBy("sort_order ASC")

	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *category})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanImages(rows)
}

func scanImages(rows *sql.Rows) ([]*domain.GalleryImage, error) {
	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage
		err := rows.Scan(
			&img.ID,
			&img.Category,
			&img.URL,
			&img.ThumbnailURL,
			&img.Caption,
			&img.AltText,
			&img.SortOrder,
			&img.Featured,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanImages - scan row: %v", ErrScanRow, err)
		}
		images = append(images, &img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanImages - rows error: %v", ErrScanRow, err)
	}
	return images, nil
}
