package tenderwatch

import (
	"context"
	"time"
)

// Source represents a seed listing page the pipeline starts discovery from.
type Source struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ListingURL string    `json:"listingUrl"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if s.ListingURL == "" {
		return Errorf(EINVALID, "source listing URL required")
	}
	return nil
}

// SourceService represents a service for managing seed sources.
type SourceService interface {
	// UpsertSource inserts the source or refreshes the record with the
	// same listing URL. The source's ID is populated on return.
	UpsertSource(ctx context.Context, source *Source) error

	// FindSources retrieves sources matching the filter.
	FindSources(ctx context.Context, filter SourceFilter) ([]*Source, error)
}

// SourceFilter represents a filter for FindSources.
type SourceFilter struct {
	ID         *string `json:"id"`
	Name       *string `json:"name"`
	ListingURL *string `json:"listingUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
