package repository

import (
	"context"
	"database/sql"
	"fmt"

	"electrorank/internal/domain"
)

// PageLogRepository records every generated page in an append-only log.
// Rows are never updated or deleted; regenerating a path appends a new row.
type PageLogRepository interface {
	Append(ctx context.Context, page *domain.GeneratedPage) error
	Recent(ctx context.Context, limit int) ([]*domain.GeneratedPage, error)
}

type pageLogRepository struct {
	db *sql.DB
}

// NewPageLogRepository creates a new instance of PageLogRepository
func NewPageLogRepository(db *sql.DB) PageLogRepository {
	return &pageLogRepository{db: db}
}

// Append inserts a new generation record and fills in the assigned ID and
// timestamp on the passed page.
func (r *pageLogRepository) Append(ctx context.Context, page *domain.GeneratedPage) error {
	query := `
		INSERT INTO generated_pages (page_type, page_path, title)
		VALUES ($1, $2, $3)
		RETURNING id, generated_at
	`

	err := r.db.QueryRowContext(ctx, query, page.Type, page.Path, page.Title).
		Scan(&page.ID, &page.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to append page log: %w", err)
	}

	return nil
}

// Recent returns the most recently generated pages, newest first. The ID is
// part of the ordering so rows generated in the same instant stay stable.
func (r *pageLogRepository) Recent(ctx context.Context, limit int) ([]*domain.GeneratedPage, error) {
	query := `
		SELECT id, page_type, page_path, title, generated_at
		FROM generated_pages
		ORDER BY generated_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent pages: %w", err)
	}
	defer rows.Close()

	pages := []*domain.GeneratedPage{}
	for rows.Next() {
		page := &domain.GeneratedPage{}
		err := rows.Scan(
			&page.ID,
			&page.Type,
			&page.Path,
			&page.Title,
			&page.GeneratedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page log entry: %w", err)
		}
		pages = append(pages, page)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating page log: %w", err)
	}

	return pages, nil
}
