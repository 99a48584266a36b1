package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/brunesco/tenderwatch"
	"github.com/brunesco/tenderwatch/mock"
	tenderslog "github.com/brunesco/tenderwatch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTenderService(t *testing.T) {
	t.Parallel()

	t.Run("logs upsert with detail URL and status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TenderService{
			UpsertTenderFn: func(ctx context.Context, tender *tenderwatch.Tender) error { return nil },
		}

		svc := tenderslog.NewLoggingTenderService(inner, logger)
		err := svc.UpsertTender(context.Background(), &tenderwatch.Tender{
			SourceID:  "src-1",
			DetailURL: "https://example.nc/avis/1",
			Status:    tenderwatch.StatusOpen,
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "upsert tender")
		assert.Contains(t, output, "url=https://example.nc/avis/1")
		assert.Contains(t, output, "status=open")
	})

	t.Run("logs upsert errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TenderService{
			UpsertTenderFn: func(ctx context.Context, tender *tenderwatch.Tender) error {
				return errors.New("disk full")
			},
		}

		svc := tenderslog.NewLoggingTenderService(inner, logger)
		err := svc.UpsertTender(context.Background(), &tenderwatch.Tender{
			SourceID:  "src-1",
			DetailURL: "https://example.nc/avis/1",
		})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})

	t.Run("logs find with result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TenderService{
			FindTendersFn: func(ctx context.Context, filter tenderwatch.TenderFilter) ([]*tenderwatch.Tender, error) {
				return []*tenderwatch.Tender{{DetailURL: "https://example.nc/avis/1"}}, nil
			},
		}

		svc := tenderslog.NewLoggingTenderService(inner, logger)
		tenders, err := svc.FindTenders(context.Background(), tenderwatch.TenderFilter{})

		require.NoError(t, err)
		assert.Len(t, tenders, 1)
		output := buf.String()
		assert.Contains(t, output, "find tenders")
		assert.Contains(t, output, "count=1")
	})
}
