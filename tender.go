package tenderwatch

import (
	"context"
	"time"
)

// Status classifies a tender relative to its deadline.
type Status string

// Tender statuses.
//
// StatusUnknown is the default when a detail page could not be fetched or
// its deadline could not be interpreted. StatusPublished means the page
// parsed but carried no recognizable deadline.
const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusPublished Status = "published"
	StatusUnknown   Status = "unknown"
)

// TitleSentinel is stored when no title could be extracted.
const TitleSentinel = "(Sans titre)"

// Tender represents one call-for-tenders record extracted from a detail page.
//
// DetailURL is the external identity: records are upserted keyed on it, and
// ContentHash detects content changes between runs. All extracted fields are
// best-effort; an empty string means the heuristic found nothing.
type Tender struct {
	ID       string `json:"id"`
	SourceID string `json:"sourceId"`

	DetailURL    string `json:"detailUrl"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Reference    string `json:"reference"`

	// Calendar dates in ISO form (YYYY-MM-DD), empty when unresolved.
	PublicationDate string `json:"publicationDate"`
	DeadlineDate    string `json:"deadlineDate"`

	Status  Status `json:"status"`
	Excerpt string `json:"excerpt"`

	// ContentHash is derived from the extracted fields, never user-visible.
	ContentHash string `json:"contentHash"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the tender contains invalid fields.
func (t *Tender) Validate() error {
	if t.SourceID == "" {
		return Errorf(EINVALID, "tender source ID required")
	}
	if t.DetailURL == "" {
		return Errorf(EINVALID, "tender detail URL required")
	}
	return nil
}

// CandidateLink is a detail-page link discovered on a listing page, together
// with the anchor text that produced it. It only exists within one discovery
// pass and is never persisted.
type CandidateLink struct {
	URL  string
	Text string
}

// TenderService represents a service for managing tender records.
type TenderService interface {
	// UpsertTender inserts the tender or, when a record with the same
	// detail URL exists, overwrites its extracted fields and content hash.
	// The tender's ID is populated on return.
	UpsertTender(ctx context.Context, tender *Tender) error

	// FindTenders retrieves tenders matching the filter, most recently
	// updated first.
	FindTenders(ctx context.Context, filter TenderFilter) ([]*Tender, error)
}

// TenderFilter represents a filter for FindTenders.
type TenderFilter struct {
	SourceID  *string `json:"sourceId"`
	Status    *Status `json:"status"`
	DetailURL *string `json:"detailUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
