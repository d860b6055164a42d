package sources

import (
	"log/slog"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/infra/fetcher"
	"github.com/sufideen/uk-news-scraper/internal/infra/scraper"
)

// DefaultSkyFeedURL is the Sky News UK feed.
const DefaultSkyFeedURL = "https://feeds.skynews.com/feeds/rss/uk.xml"

var skyStrategies = []scraper.Strategy{
	scraper.MetaAuthor(),
	scraper.Selector(`.author-name`),
	scraper.Selector(`[data-testid="author-name"]`),
	scraper.Selector(`article header p a`),
}

// NewSky builds the Sky News adapter. Like The Independent, the feed may
// embed the byline and the page scrape is a fallback only.
func NewSky(feedURL string, feeds *scraper.FeedParser, pages *fetcher.Client, pacer Pacer, logger *slog.Logger) *FeedAdapter {
	return NewFeedAdapter(FeedSource{
		Name:         entity.SourceSky,
		FeedURL:      feedURL,
		AuthorInFeed: true,
		Strategies:   skyStrategies,
	}, feeds, pages, pacer, logger)
}
