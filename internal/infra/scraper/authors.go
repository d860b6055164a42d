package scraper

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is one attempt at recovering an author string from a parsed
// article page. It returns an empty string when its target is absent.
// Strategies never fail; absence is an acceptable terminal value.
type Strategy func(doc *goquery.Document) string

// Selector returns a strategy that takes the text of the first node
// matching a CSS selector.
func Selector(sel string) Strategy {
	return func(doc *goquery.Document) string {
		return strings.TrimSpace(doc.Find(sel).First().Text())
	}
}

// MetaAuthor returns a strategy that reads the generic
// <meta name="author"> tag.
func MetaAuthor() Strategy {
	return func(doc *goquery.Document) string {
		content, _ := doc.Find(`meta[name="author"]`).First().Attr("content")
		return strings.TrimSpace(content)
	}
}

// ExtractAuthor applies an ordered list of strategies to an article page
// and returns the first non-empty result. Strategy order is significant:
// earlier entries target the outlet's current byline markup, later ones
// are cheaper generic fallbacks. An empty string means every strategy
// came up empty, which callers treat as "author unresolved".
func ExtractAuthor(pageHTML []byte, strategies []Strategy) string {
	if len(pageHTML) == 0 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(pageHTML))
	if err != nil {
		return ""
	}

	for _, strategy := range strategies {
		if author := strategy(doc); author != "" {
			return author
		}
	}
	return ""
}
