// Package crawl provides the tender extraction pipeline: it iterates seed
// sources, discovers candidate detail links on each listing page, extracts
// and fingerprints tender records, and hands them to the store.
//
// Execution is strictly sequential: sources one at a time, candidates one at
// a time, with cooperative pacing between outbound requests. One candidate's
// failure is logged and never stops the run.
package crawl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/brunesco/tenderwatch"
)

// Pipeline orchestrates discovery, extraction and persistence across the
// configured seed sources.
type Pipeline struct {
	Fetcher    tenderwatch.Fetcher
	Discoverer tenderwatch.LinkDiscoverer
	Extractor  tenderwatch.TenderExtractor
	Sources    tenderwatch.SourceService
	Tenders    tenderwatch.TenderService

	// Pacer bounds the outbound request rate. Nil disables pacing.
	Pacer *Pacer

	// RetryDelays configures fetch retry backoff.
	// Defaults to DefaultRetryDelays() if nil.
	RetryDelays []time.Duration

	// Logger receives per-candidate warnings. Nil discards them.
	Logger *slog.Logger
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Sources    int
	Candidates int
	Saved      int
	Failed     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressSourceStarted ProgressType = iota
	ProgressCandidateSaved
	ProgressCandidateFailed
	ProgressSourceFinished
)

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type      ProgressType
	Source    string
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// Run processes every source in order. Individual candidate failures are
// surfaced through the progress callback and the logger as warnings; the
// only errors Run returns stem from context cancellation.
func (p *Pipeline) Run(ctx context.Context, sources []tenderwatch.Source, progress ProgressFunc) (*Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	emit := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	result := &Result{}
	for i := range sources {
		source := sources[i]
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := p.Sources.UpsertSource(ctx, &source); err != nil {
			logger.Warn("source registration failed",
				"source", source.Name, "url", source.ListingURL, "error", err)
			continue
		}
		result.Sources++

		links := p.discoverCandidates(ctx, &source, delays, logger)
		emit(ProgressEvent{
			Type:   ProgressSourceStarted,
			Source: source.Name,
			Total:  len(links),
		})

		saved := 0
		for n, link := range links {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			if p.Pacer != nil {
				if err := p.Pacer.Wait(ctx); err != nil {
					return result, err
				}
			}

			result.Candidates++
			if err := p.processCandidate(ctx, &source, link, delays); err != nil {
				result.Failed++
				logger.Warn("candidate failed", "url", link.URL, "error", err)
				emit(ProgressEvent{
					Type:      ProgressCandidateFailed,
					Source:    source.Name,
					URL:       link.URL,
					Completed: n + 1,
					Total:     len(links),
					Error:     err,
				})
				continue
			}
			saved++
			result.Saved++
			emit(ProgressEvent{
				Type:      ProgressCandidateSaved,
				Source:    source.Name,
				URL:       link.URL,
				Completed: n + 1,
				Total:     len(links),
			})
		}

		emit(ProgressEvent{
			Type:      ProgressSourceFinished,
			Source:    source.Name,
			Completed: saved,
			Total:     len(links),
		})
	}
	return result, nil
}

// discoverCandidates fetches a listing page and extracts candidate links.
// A listing that cannot be fetched or parsed yields no candidates, which is
// a warning, not a failure.
func (p *Pipeline) discoverCandidates(ctx context.Context, source *tenderwatch.Source, delays []time.Duration, logger *slog.Logger) []tenderwatch.CandidateLink {
	listing, err := FetchWithRetryDelays(ctx, p.Fetcher, source.ListingURL, delays)
	if err != nil {
		logger.Warn("listing fetch failed", "source", source.Name, "url", source.ListingURL, "error", err)
		return nil
	}
	links, err := p.Discoverer.Discover(listing.Body, source.ListingURL)
	if err != nil {
		logger.Warn("listing parse failed", "source", source.Name, "url", source.ListingURL, "error", err)
		return nil
	}
	return links
}

// processCandidate fetches one detail page, extracts a tender record,
// fingerprints it and hands it to the store. An exhausted fetch degrades to
// a placeholder record rather than failing the candidate.
func (p *Pipeline) processCandidate(ctx context.Context, source *tenderwatch.Source, link tenderwatch.CandidateLink, delays []time.Duration) error {
	resp, err := FetchWithRetryDelays(ctx, p.Fetcher, link.URL, delays)
	if err != nil {
		resp = nil // no data after retries is a normal, handled outcome
	}

	tender, err := p.Extractor.Extract(resp, link.URL)
	if err != nil {
		return err
	}

	tender.SourceID = source.ID
	if tender.Title == "" {
		tender.Title = tenderwatch.TitleSentinel
	}
	tender.ContentHash = tenderwatch.Fingerprint(
		tender.Title,
		tender.Organization,
		tender.DetailURL,
		tender.PublicationDate,
		tender.DeadlineDate,
		tender.Excerpt,
	)

	return p.Tenders.UpsertTender(ctx, tender)
}
