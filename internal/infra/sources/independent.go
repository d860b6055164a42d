package sources

import (
	"log/slog"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/infra/fetcher"
	"github.com/sufideen/uk-news-scraper/internal/infra/scraper"
)

// DefaultIndependentFeedURL is The Independent's UK news feed.
const DefaultIndependentFeedURL = "https://www.independent.co.uk/news/uk/rss"

var independentStrategies = []scraper.Strategy{
	scraper.MetaAuthor(),
	scraper.Selector(`a[data-testid="author-name"]`),
	scraper.Selector(`.author__name`),
	scraper.Selector(`[itemprop="author"] [itemprop="name"]`),
}

// NewIndependent builds The Independent adapter. The feed usually embeds
// the byline as dc:creator; the page scrape is a fallback only.
func NewIndependent(feedURL string, feeds *scraper.FeedParser, pages *fetcher.Client, pacer Pacer, logger *slog.Logger) *FeedAdapter {
	return NewFeedAdapter(FeedSource{
		Name:         entity.SourceIndependent,
		FeedURL:      feedURL,
		AuthorInFeed: true,
		Strategies:   independentStrategies,
	}, feeds, pages, pacer, logger)
}
