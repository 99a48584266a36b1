package tenderwatch

// LinkDiscoverer extracts candidate tender-detail links from a listing page.
type LinkDiscoverer interface {
	// Discover parses listing HTML, resolves anchors against baseURL and
	// returns plausible detail links in first-seen order, deduplicated
	// and capped. Keyword matching is deliberately permissive: false
	// positives degrade to sentinel records downstream instead of
	// failing.
	Discover(html string, baseURL string) ([]CandidateLink, error)
}

// TenderExtractor derives a tender record from a fetched detail page.
type TenderExtractor interface {
	// Extract builds a Tender from the response for detailURL. Every
	// field is best-effort: a heuristic that matches nothing leaves its
	// field empty rather than failing. A nil response yields a record
	// with only the detail URL populated and StatusUnknown.
	Extract(resp *Response, detailURL string) (*Tender, error)
}

// DateExtractor derives a publication/deadline date pair from free text.
type DateExtractor interface {
	// ExtractDates scans text for date-like substrings and returns ISO
	// dates (YYYY-MM-DD), empty when unresolved. With several distinct
	// dates the earliest is taken as publication and the latest as
	// deadline; a single date counts as the deadline when it follows a
	// deadline label, else as the publication date. Texts with no usable
	// dates are a normal outcome, not an error.
	ExtractDates(text string) (publication string, deadline string)
}
