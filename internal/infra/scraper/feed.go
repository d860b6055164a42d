// Package scraper provides the shared leaf utilities for reading remote
// sources: a tolerant RSS/Atom feed parser built on gofeed and a
// strategy-list author extractor built on goquery.
package scraper

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedEntry is one raw entry recovered from a syndication feed. All fields
// are optional; absent fields are empty strings.
type FeedEntry struct {
	Title     string
	Link      string
	Summary   string
	Published string
	Author    string
}

// FeedParser fetches and parses RSS/Atom feeds. Parsing is tolerant:
// structural errors are logged and any entries still recovered are used,
// so a broken feed degrades to a small or empty entry list rather than a
// failure.
type FeedParser struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// NewFeedParser creates a feed parser that identifies itself with the
// given User-Agent on every request.
func NewFeedParser(userAgent string, timeout time.Duration, logger *slog.Logger) *FeedParser {
	return &FeedParser{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Parse retrieves the feed at the given URL and returns its entries in
// feed order. A structural parse error is a warning, not a failure: the
// caller receives whatever entries were recovered, possibly none.
func (p *FeedParser) Parse(ctx context.Context, feedURL string) []FeedEntry {
	fp := gofeed.NewParser()
	fp.UserAgent = p.userAgent
	fp.Client = p.client

	p.logger.Info("fetching feed", slog.String("url", feedURL))

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		if feed == nil || len(feed.Items) == 0 {
			p.logger.Warn("feed parse error",
				slog.String("url", feedURL),
				slog.Any("error", err))
			return nil
		}
		p.logger.Warn("feed parse error, using recovered entries",
			slog.String("url", feedURL),
			slog.Int("entries", len(feed.Items)),
			slog.Any("error", err))
	}

	entries := make([]FeedEntry, 0, len(feed.Items))
	for _, it := range feed.Items {
		entries = append(entries, FeedEntry{
			Title:     strings.TrimSpace(it.Title),
			Link:      strings.TrimSpace(it.Link),
			Summary:   it.Description,
			Published: it.Published,
			Author:    entryAuthor(it),
		})
	}
	return entries
}

// entryAuthor pulls the byline embedded in a feed entry, if any.
// gofeed maps dc:creator and atom authors onto Item.Author / Item.Authors.
func entryAuthor(it *gofeed.Item) string {
	if it.Author != nil && it.Author.Name != "" {
		return strings.TrimSpace(it.Author.Name)
	}
	for _, a := range it.Authors {
		if a != nil && a.Name != "" {
			return strings.TrimSpace(a.Name)
		}
	}
	return ""
}
