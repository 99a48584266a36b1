// Package dateparse derives publication/deadline date pairs from free text
// using shape regexes and the araddon/dateparse parser, with a French
// month-name table for spelled-out dates.
package dateparse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/brunesco/tenderwatch"
)

// Ensure Extractor implements tenderwatch.DateExtractor at compile time.
var _ tenderwatch.DateExtractor = (*Extractor)(nil)

// ISO is the calendar-date layout used throughout the module.
const ISO = "2006-01-02"

// dateShapeRE matches the three date shapes found on tender pages:
// numeric day-first (15/03/2024, 15.03.24), numeric ISO (2024-03-15) and
// French day-monthname-year (15 mars 2024, 1 janv. 2024).
var dateShapeRE = regexp.MustCompile(
	`(?i)\b(?:\d{1,2}[/.\- ]\d{1,2}[/.\- ]\d{2,4}|\d{4}[/\-]\d{1,2}[/\-]\d{1,2}|\d{1,2}\s+[a-zéûôàâîïùç]+\.?\s+\d{4})\b`,
)

// deadlineLabelRE finds a closing-date label followed within 120 characters
// by a date shape on the same line.
var deadlineLabelRE = regexp.MustCompile(
	`(?i)(date limite|clôture|date de dépôt|délais)[^\n\r]{0,120}?(\d{1,2}[/.\- ]\d{1,2}[/.\- ]\d{2,4}|\d{1,2}\s+[a-zéûôàâîïùç]+\.?\s+\d{4}|\d{4}-\d{2}-\d{2})`,
)

var numericSepRE = regexp.MustCompile(`[.\- ]`)

// monthNames maps French month names and their common abbreviations to
// calendar months.
var monthNames = map[string]time.Month{
	"janvier":   time.January,
	"janv":      time.January,
	"jan":       time.January,
	"février":   time.February,
	"fevrier":   time.February,
	"févr":      time.February,
	"fevr":      time.February,
	"fév":       time.February,
	"fev":       time.February,
	"mars":      time.March,
	"avril":     time.April,
	"avr":       time.April,
	"mai":       time.May,
	"juin":      time.June,
	"juillet":   time.July,
	"juil":      time.July,
	"août":      time.August,
	"aout":      time.August,
	"septembre": time.September,
	"sept":      time.September,
	"sep":       time.September,
	"octobre":   time.October,
	"oct":       time.October,
	"novembre":  time.November,
	"nov":       time.November,
	"décembre":  time.December,
	"decembre":  time.December,
	"déc":       time.December,
	"dec":       time.December,
}

// Extractor scans free text for date-like substrings and reconciles them
// into a (publication, deadline) pair.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractDates returns ISO dates (YYYY-MM-DD), empty when unresolved.
//
// All date-shaped substrings are parsed best-effort; unparseable matches are
// skipped. With several distinct dates the earliest is the publication date
// and the latest the deadline. A single date is the publication date unless
// the text carries a deadline label (date limite, clôture, ...), in which
// case it is the deadline. With no parseable generic match, a labeled
// deadline is still honored. A text with zero usable dates is a normal
// outcome.
func (e *Extractor) ExtractDates(text string) (publication string, deadline string) {
	var dates []string
	seen := make(map[string]bool)
	for _, m := range dateShapeRE.FindAllString(text, -1) {
		t, ok := parseDate(m)
		if !ok {
			continue
		}
		iso := t.Format(ISO)
		if !seen[iso] {
			seen[iso] = true
			dates = append(dates, iso)
		}
	}

	if len(dates) > 0 {
		sort.Strings(dates)
		if len(dates) > 1 {
			return dates[0], dates[len(dates)-1]
		}
		// A lone date under a deadline label is a closing date, not a
		// publication date.
		if d, ok := labeledDeadline(text); ok {
			return "", d
		}
		return dates[0], ""
	}

	if d, ok := labeledDeadline(text); ok {
		return "", d
	}
	return "", ""
}

// labeledDeadline extracts a date from a deadline-labeled context.
func labeledDeadline(text string) (string, bool) {
	m := deadlineLabelRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	t, ok := parseDate(m[2])
	if !ok {
		return "", false
	}
	return t.Format(ISO), true
}

// parseDate parses a single date-shaped substring, preferring day-first
// interpretation for ambiguous numeric forms.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, ok := parseMonthName(s); ok {
		return t, true
	}

	// Unify numeric separators so 15.03.2024 and 15 03 2024 parse like
	// 15/03/2024. ISO forms keep their meaning under the same rewrite.
	norm := numericSepRE.ReplaceAllString(s, "/")
	t, err := dateparse.ParseAny(norm,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseMonthName parses the "15 mars 2024" shape using the French month
// table. Trailing periods on abbreviations are accepted.
func parseMonthName(s string) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, ok := monthNames[strings.TrimSuffix(strings.ToLower(fields[1]), ".")]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil || year < 1000 || year > 9999 {
		return time.Time{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		// time.Date normalizes overflows like "31 février"; reject them.
		return time.Time{}, false
	}
	return t, true
}
