package goquery

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/brunesco/tenderwatch"
)

// Ensure Extractor implements tenderwatch.TenderExtractor at compile time.
var _ tenderwatch.TenderExtractor = (*Extractor)(nil)

// Sentinel values stored when a detail URL points at a PDF document instead
// of an HTML page.
const (
	PDFTitleSentinel   = "Document PDF (voir pièce)"
	PDFExcerptSentinel = "PDF détecté — lecture manuelle conseillée."
)

// Excerpt bounds, in characters: the first block-level node longer than the
// minimum is kept, truncated to the maximum.
const (
	excerptMinChars = 60
	excerptMaxChars = 600
)

// titleMatchers is the ordered title resolution cascade: first non-empty
// candidate wins.
var titleMatchers = []func(doc *goquery.Document) string{
	func(doc *goquery.Document) string {
		return doc.Find("h1").First().Text()
	},
	func(doc *goquery.Document) string {
		content, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
		return content
	},
	func(doc *goquery.Document) string {
		return doc.Find("title").First().Text()
	},
}

// organizationREs is the ordered labeled-prefix cascade for the contracting
// organization: first pattern that matches wins. The capture is a
// capitalized phrase of letters, digits, spaces, hyphens, apostrophes and
// ampersands.
var organizationREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Organisme[:\s\-]{0,30}([A-ZÀ-Ÿ][A-Za-zÀ-ÿ0-9 \-&'’]{3,120})`),
	regexp.MustCompile(`(?i)Ma[iî]tre d['’ ]ouvrage[:\s\-]{0,30}([A-ZÀ-Ÿ][A-Za-zÀ-ÿ0-9 \-&'’]{3,120})`),
	regexp.MustCompile(`(?i)Collectivit[eé][: \-]{0,30}([A-ZÀ-Ÿ][A-Za-zÀ-ÿ0-9 \-&'’]{3,120})`),
	regexp.MustCompile(`(?i)Pouvoir adjudicateur[:\s\-]{0,30}([A-ZÀ-Ÿ][A-Za-zÀ-ÿ0-9 \-&'’]{3,120})`),
}

// referenceRE matches a labeled reference code like "Référence: AO-2024/12".
// Only the label is case-insensitive: the code itself must be uppercase, or
// fragments like "réfection" would produce phantom references.
var referenceRE = regexp.MustCompile(`(?i:réf(?:érence)?|ref\.?|n°|no)\s*[:\-\s]{0,5}([A-Z0-9\-/.]{3,60})`)

// Extractor derives tender records from fetched detail pages.
type Extractor struct {
	dates tenderwatch.DateExtractor
	now   func() time.Time
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithClock sets the time source used for open/closed status resolution.
// Defaults to time.Now.
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates a new Extractor delegating date recognition to dates.
func NewExtractor(dates tenderwatch.DateExtractor, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		dates: dates,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds a tender record from the response for detailURL.
//
// Every field degrades independently: a heuristic that matches nothing
// leaves its field empty, and a nil response (fetch exhausted) yields a
// record with only the detail URL populated and StatusUnknown. Content
// problems are never reported as errors.
func (e *Extractor) Extract(resp *tenderwatch.Response, detailURL string) (*tenderwatch.Tender, error) {
	tender := &tenderwatch.Tender{
		DetailURL: detailURL,
		Status:    tenderwatch.StatusUnknown,
	}
	if resp == nil {
		return tender, nil
	}

	if isPDF(resp.ContentType, detailURL) {
		tender.Title = PDFTitleSentinel
		tender.Excerpt = PDFExcerptSentinel
		return tender, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.Body))
	if err != nil {
		return tender, nil
	}
	flat := flattenText(doc)

	for _, match := range titleMatchers {
		if title := tenderwatch.Normalize(match(doc)); title != "" {
			tender.Title = title
			break
		}
	}

	for _, re := range organizationREs {
		if m := re.FindStringSubmatch(flat); m != nil {
			tender.Organization = tenderwatch.Normalize(m[1])
			break
		}
	}

	if m := referenceRE.FindStringSubmatch(flat); m != nil {
		tender.Reference = strings.TrimRight(m[1], "./-")
	}

	tender.PublicationDate, tender.DeadlineDate = e.dates.ExtractDates(flat)
	tender.Excerpt = firstExcerpt(doc)
	e.resolveStatus(tender)

	return tender, nil
}

// firstExcerpt returns the first paragraph- or division-level text longer
// than the excerpt minimum, truncated to the excerpt maximum.
func firstExcerpt(doc *goquery.Document) string {
	var excerpt string
	doc.Find("p, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := tenderwatch.Normalize(sel.Text())
		if utf8.RuneCountInString(text) > excerptMinChars {
			excerpt = tenderwatch.Truncate(text, excerptMaxChars)
			return false
		}
		return true
	})
	return excerpt
}

// resolveStatus classifies the tender against the deadline and the clock.
// A deadline that cannot be re-parsed leaves the status untouched rather
// than failing the extraction.
func (e *Extractor) resolveStatus(tender *tenderwatch.Tender) {
	if tender.DeadlineDate == "" {
		tender.Status = tenderwatch.StatusPublished
		return
	}
	deadline, err := time.Parse("2006-01-02", tender.DeadlineDate)
	if err != nil {
		return
	}
	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if deadline.Before(today) {
		tender.Status = tenderwatch.StatusClosed
	} else {
		tender.Status = tenderwatch.StatusOpen
	}
}

// isPDF reports whether the response signals a PDF payload, by content type
// or URL suffix.
func isPDF(contentType, url string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/pdf") ||
		strings.HasSuffix(strings.ToLower(url), ".pdf")
}
