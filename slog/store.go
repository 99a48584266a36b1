package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/brunesco/tenderwatch"
)

// Ensure LoggingTenderService implements tenderwatch.TenderService.
var _ tenderwatch.TenderService = (*LoggingTenderService)(nil)

// LoggingTenderService wraps a TenderService with per-operation logging.
type LoggingTenderService struct {
	next   tenderwatch.TenderService
	logger *slog.Logger
}

// NewLoggingTenderService creates a new LoggingTenderService.
func NewLoggingTenderService(next tenderwatch.TenderService, logger *slog.Logger) *LoggingTenderService {
	return &LoggingTenderService{next: next, logger: logger}
}

// UpsertTender delegates to the wrapped service and logs the operation.
func (s *LoggingTenderService) UpsertTender(ctx context.Context, tender *tenderwatch.Tender) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("upsert tender",
			"url", tender.DetailURL,
			"status", tender.Status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertTender(ctx, tender)
}

// FindTenders delegates to the wrapped service and logs the operation.
func (s *LoggingTenderService) FindTenders(ctx context.Context, filter tenderwatch.TenderFilter) (tenders []*tenderwatch.Tender, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find tenders",
			"count", len(tenders),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTenders(ctx, filter)
}
