// Package goquery provides goquery-based implementations of the
// tenderwatch link discovery and detail extraction interfaces.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brunesco/tenderwatch"
)

// Ensure Discoverer implements tenderwatch.LinkDiscoverer at compile time.
var _ tenderwatch.LinkDiscoverer = (*Discoverer)(nil)

// DefaultMaxCandidates caps the number of candidate links kept per listing.
const DefaultMaxCandidates = 200

// DefaultKeywords returns the substrings matched against URL plus anchor
// text. Deliberately permissive, multilingual stems included: false
// positives degrade to sentinel records downstream instead of failing.
func DefaultKeywords() []string {
	return []string{
		"appel", "offre", "march", "consult", "avis", "soumission",
		"aop", "aops", "notice", "detail", "fiche", "consultation",
	}
}

// DefaultPathHints returns the URL path segments that mark a link as a
// detail or notice page regardless of its anchor text.
func DefaultPathHints() []string {
	return []string{"detail", "avis", "consult", "offre", "notice", "fiche"}
}

// Discoverer extracts candidate tender-detail links from listing pages.
type Discoverer struct {
	keywords  []string
	pathHints []string
	max       int
}

// DiscovererOption configures a Discoverer.
type DiscovererOption func(*Discoverer)

// WithKeywords replaces the default keyword allow-list.
func WithKeywords(keywords []string) DiscovererOption {
	return func(d *Discoverer) {
		d.keywords = keywords
	}
}

// WithPathHints replaces the default URL path hints.
func WithPathHints(hints []string) DiscovererOption {
	return func(d *Discoverer) {
		d.pathHints = hints
	}
}

// WithMaxCandidates sets the per-listing candidate cap.
// Defaults to DefaultMaxCandidates (200) if not specified.
func WithMaxCandidates(n int) DiscovererOption {
	return func(d *Discoverer) {
		d.max = n
	}
}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer(opts ...DiscovererOption) *Discoverer {
	d := &Discoverer{
		keywords:  DefaultKeywords(),
		pathHints: DefaultPathHints(),
		max:       DefaultMaxCandidates,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover parses listing HTML and returns plausible detail links resolved
// against baseURL, deduplicated by exact URL in first-seen order and capped.
// Cross-host links are kept: tender portals commonly link out to other
// official hosts.
func (d *Discoverer) Discover(html string, baseURL string) ([]tenderwatch.CandidateLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, tenderwatch.Errorf(tenderwatch.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tenderwatch.Errorf(tenderwatch.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []tenderwatch.CandidateLink

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Skip non-HTTP links (javascript:, mailto:, tel:, data:)
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		u, err := url.Parse(resolved)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return
		}

		text := strings.TrimSpace(sel.Text())
		if !d.likelyTenderLink(resolved, text, u) {
			return
		}

		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, tenderwatch.CandidateLink{URL: resolved, Text: text})
	})

	if d.max > 0 && len(links) > d.max {
		links = links[:d.max]
	}
	return links, nil
}

// likelyTenderLink reports whether a resolved URL plus its anchor text looks
// like a tender detail or notice link.
func (d *Discoverer) likelyTenderLink(resolved, text string, u *url.URL) bool {
	hay := strings.ToLower(resolved + " " + text)
	for _, k := range d.keywords {
		if strings.Contains(hay, k) {
			return true
		}
	}
	path := strings.ToLower(u.Path)
	for _, h := range d.pathHints {
		if strings.Contains(path, h) {
			return true
		}
	}
	return false
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
// Fragments are stripped from the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = "" // Strip fragment for deduplication

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
