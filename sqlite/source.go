package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/brunesco/tenderwatch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tenderwatch.SourceService = (*SourceService)(nil)

// SourceService implements tenderwatch.SourceService using SQLite.
type SourceService struct {
	db *DB
}

// NewSourceService creates a new SourceService.
func NewSourceService(db *DB) *SourceService {
	return &SourceService{db: db}
}

// UpsertSource inserts the source, or refreshes the name and active flag of
// the existing record with the same listing URL. The source's ID and
// timestamps are populated from the stored row.
func (s *SourceService) UpsertSource(ctx context.Context, source *tenderwatch.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var createdAt, updatedAt string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO sources (id, name, listing_url, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(listing_url) DO UPDATE SET
			name = excluded.name,
			active = excluded.active,
			updated_at = excluded.updated_at
		RETURNING id, created_at, updated_at
	`, uuid.New().String(), source.Name, source.ListingURL, source.Active, now, now).
		Scan(&source.ID, &createdAt, &updatedAt)
	if err != nil {
		return err
	}

	source.CreatedAt, source.UpdatedAt, err = scanTimes(createdAt, updatedAt)
	return err
}

// FindSources retrieves sources matching the filter, oldest first.
func (s *SourceService) FindSources(ctx context.Context, filter tenderwatch.SourceFilter) ([]*tenderwatch.Source, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, listing_url, active, created_at, updated_at FROM sources WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.ListingURL != nil {
		query.WriteString(" AND listing_url = ?")
		args = append(args, *filter.ListingURL)
	}

	query.WriteString(" ORDER BY created_at ASC, id ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*tenderwatch.Source
	for rows.Next() {
		var source tenderwatch.Source
		var createdAt, updatedAt string

		if err := rows.Scan(&source.ID, &source.Name, &source.ListingURL, &source.Active,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if source.CreatedAt, source.UpdatedAt, err = scanTimes(createdAt, updatedAt); err != nil {
			return nil, err
		}

		sources = append(sources, &source)
	}

	return sources, rows.Err()
}
