package tenderwatch

import (
	"strings"
	"unicode/utf8"
)

// Normalize collapses any run of whitespace (including newlines, tabs and
// non-breaking spaces) into a single space and trims the result. Empty input
// yields "".
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most max characters without splitting a rune.
// Used to cap extracted excerpts.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
