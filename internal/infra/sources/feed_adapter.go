package sources

import (
	"context"
	"log/slog"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/infra/fetcher"
	"github.com/sufideen/uk-news-scraper/internal/infra/scraper"
	"github.com/sufideen/uk-news-scraper/internal/observability/logging"
	"github.com/sufideen/uk-news-scraper/internal/utils/text"
)

// FeedSource describes one feed-backed outlet.
type FeedSource struct {
	// Name is the source label stamped on every article.
	Name string

	// FeedURL is the outlet's syndication feed endpoint.
	FeedURL string

	// AuthorInFeed marks outlets whose feed may embed a byline
	// (dc:creator). When the feed carries no byline for an entry, or for
	// outlets where AuthorInFeed is false, the adapter falls back to a
	// page scrape.
	AuthorInFeed bool

	// Strategies is the ordered author-extraction strategy list for the
	// outlet's article page markup.
	Strategies []scraper.Strategy
}

// FeedAdapter collects articles for a feed-backed outlet: the feed supplies
// title/link/summary/date, and the author comes from the feed entry or a
// paced page-scrape fallback.
type FeedAdapter struct {
	src    FeedSource
	feeds  *scraper.FeedParser
	pages  *fetcher.Client
	pacer  Pacer
	logger *slog.Logger
}

// NewFeedAdapter builds an adapter for the given feed source.
func NewFeedAdapter(src FeedSource, feeds *scraper.FeedParser, pages *fetcher.Client, pacer Pacer, logger *slog.Logger) *FeedAdapter {
	return &FeedAdapter{
		src:    src,
		feeds:  feeds,
		pages:  pages,
		pacer:  pacer,
		logger: logging.WithSource(logger, src.Name),
	}
}

// Name returns the source label.
func (a *FeedAdapter) Name() string {
	return a.src.Name
}

// Collect fetches the feed and normalizes each entry. An empty feed is an
// empty contribution, not an error. A failed page scrape leaves the author
// empty and processing continues with the next entry.
func (a *FeedAdapter) Collect(ctx context.Context) ([]entity.Article, error) {
	entries := a.feeds.Parse(ctx, a.src.FeedURL)
	a.logger.Info("feed entries found", slog.Int("entries", len(entries)))

	articles := make([]entity.Article, 0, len(entries))
	for _, e := range entries {
		author := ""
		if a.src.AuthorInFeed {
			author = e.Author
		}

		// One politeness delay per article, taken regardless of whether
		// the page-scrape fallback is needed.
		a.pacer.Wait(ctx)

		if author == "" {
			if body, ok := a.pages.Get(ctx, e.Link); ok {
				author = scraper.ExtractAuthor(body, a.src.Strategies)
			}
		}

		articles = append(articles, entity.Article{
			Source:        a.src.Name,
			Title:         e.Title,
			URL:           e.Link,
			Summary:       text.StripMarkup(e.Summary),
			Author:        author,
			PublishedDate: text.NormalizeDate(e.Published),
		})
	}

	return articles, nil
}
