package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/brunesco/tenderwatch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tenderwatch.TenderService = (*TenderService)(nil)

// TenderService implements tenderwatch.TenderService using SQLite.
type TenderService struct {
	db *DB
}

// NewTenderService creates a new TenderService.
func NewTenderService(db *DB) *TenderService {
	return &TenderService{db: db}
}

// UpsertTender inserts the tender, or overwrites the extracted fields and
// content hash of the existing record with the same detail URL. The tender's
// ID and timestamps are populated from the stored row.
func (s *TenderService) UpsertTender(ctx context.Context, tender *tenderwatch.Tender) error {
	if err := tender.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var createdAt, updatedAt string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tenders (id, source_id, detail_url, title, organization, reference,
			publication_date, deadline_date, status, excerpt, content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(detail_url) DO UPDATE SET
			source_id = excluded.source_id,
			title = excluded.title,
			organization = excluded.organization,
			reference = excluded.reference,
			publication_date = excluded.publication_date,
			deadline_date = excluded.deadline_date,
			status = excluded.status,
			excerpt = excluded.excerpt,
			content_hash = excluded.content_hash,
			updated_at = excluded.updated_at
		RETURNING id, created_at, updated_at
	`, uuid.New().String(), tender.SourceID, tender.DetailURL, tender.Title, tender.Organization,
		tender.Reference, tender.PublicationDate, tender.DeadlineDate, string(tender.Status),
		tender.Excerpt, tender.ContentHash, now, now).
		Scan(&tender.ID, &createdAt, &updatedAt)
	if err != nil {
		return err
	}

	tender.CreatedAt, tender.UpdatedAt, err = scanTimes(createdAt, updatedAt)
	return err
}

// FindTenders retrieves tenders matching the filter, most recently updated
// first.
func (s *TenderService) FindTenders(ctx context.Context, filter tenderwatch.TenderFilter) ([]*tenderwatch.Tender, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, source_id, detail_url, title, organization, reference,
		publication_date, deadline_date, status, excerpt, content_hash, created_at, updated_at
		FROM tenders WHERE 1=1`)

	if filter.SourceID != nil {
		query.WriteString(" AND source_id = ?")
		args = append(args, *filter.SourceID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.DetailURL != nil {
		query.WriteString(" AND detail_url = ?")
		args = append(args, *filter.DetailURL)
	}

	query.WriteString(" ORDER BY updated_at DESC, id ASC")

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

	var tenders []*tenderwatch.Tender
	for rows.Next() {
		var tender tenderwatch.Tender
		var status, createdAt, updatedAt string

		if err := rows.Scan(&tender.ID, &tender.SourceID, &tender.DetailURL, &tender.Title,
			&tender.Organization, &tender.Reference, &tender.PublicationDate, &tender.DeadlineDate,
			&status, &tender.Excerpt, &tender.ContentHash, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		tender.Status = tenderwatch.Status(status)

		if tender.CreatedAt, tender.UpdatedAt, err = scanTimes(createdAt, updatedAt); err != nil {
			return nil, err
		}

		tenders = append(tenders, &tender)
	}

	return tenders, rows.Err()
}
