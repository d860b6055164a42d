// Package text provides shared text normalization helpers used by every
// source adapter: HTML stripping for feed summaries and tolerant date
// normalization for heterogeneous upstream date strings.
package text

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripMarkup removes HTML markup from a fragment and returns its text
// content with leading and trailing whitespace trimmed.
//
// Parsing is tolerant: malformed fragments never produce an error, and the
// worst case degrades to returning the trimmed input. Empty input returns
// an empty string.
func StripMarkup(raw string) string {
	if raw == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		// net/html is error-free on arbitrary input in practice; this
		// branch only triggers on reader failure.
		return strings.TrimSpace(raw)
	}

	return strings.TrimSpace(doc.Text())
}
