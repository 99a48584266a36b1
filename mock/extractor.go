package mock

import "github.com/brunesco/tenderwatch"

var _ tenderwatch.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of tenderwatch.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverFn func(html string, baseURL string) ([]tenderwatch.CandidateLink, error)
}

func (d *LinkDiscoverer) Discover(html string, baseURL string) ([]tenderwatch.CandidateLink, error) {
	return d.DiscoverFn(html, baseURL)
}

var _ tenderwatch.TenderExtractor = (*TenderExtractor)(nil)

// TenderExtractor is a mock implementation of tenderwatch.TenderExtractor.
type TenderExtractor struct {
	ExtractFn func(resp *tenderwatch.Response, detailURL string) (*tenderwatch.Tender, error)
}

func (e *TenderExtractor) Extract(resp *tenderwatch.Response, detailURL string) (*tenderwatch.Tender, error) {
	return e.ExtractFn(resp, detailURL)
}

var _ tenderwatch.DateExtractor = (*DateExtractor)(nil)

// DateExtractor is a mock implementation of tenderwatch.DateExtractor.
type DateExtractor struct {
	ExtractDatesFn func(text string) (string, string)
}

func (e *DateExtractor) ExtractDates(text string) (string, string) {
	return e.ExtractDatesFn(text)
}
