package mock

import (
	"context"

	"github.com/brunesco/tenderwatch"
)

var _ tenderwatch.SourceService = (*SourceService)(nil)

// SourceService is a mock implementation of tenderwatch.SourceService.
type SourceService struct {
	UpsertSourceFn func(ctx context.Context, source *tenderwatch.Source) error
	FindSourcesFn  func(ctx context.Context, filter tenderwatch.SourceFilter) ([]*tenderwatch.Source, error)
}

func (s *SourceService) UpsertSource(ctx context.Context, source *tenderwatch.Source) error {
	return s.UpsertSourceFn(ctx, source)
}

func (s *SourceService) FindSources(ctx context.Context, filter tenderwatch.SourceFilter) ([]*tenderwatch.Source, error) {
	return s.FindSourcesFn(ctx, filter)
}

var _ tenderwatch.TenderService = (*TenderService)(nil)

// TenderService is a mock implementation of tenderwatch.TenderService.
type TenderService struct {
	UpsertTenderFn func(ctx context.Context, tender *tenderwatch.Tender) error
	FindTendersFn  func(ctx context.Context, filter tenderwatch.TenderFilter) ([]*tenderwatch.Tender, error)
}

func (s *TenderService) UpsertTender(ctx context.Context, tender *tenderwatch.Tender) error {
	return s.UpsertTenderFn(ctx, tender)
}

func (s *TenderService) FindTenders(ctx context.Context, filter tenderwatch.TenderFilter) ([]*tenderwatch.Tender, error) {
	return s.FindTendersFn(ctx, filter)
}
