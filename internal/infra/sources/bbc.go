package sources

import (
	"log/slog"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/infra/fetcher"
	"github.com/sufideen/uk-news-scraper/internal/infra/scraper"
)

// DefaultBBCFeedURL is the BBC News UK syndication feed.
const DefaultBBCFeedURL = "https://feeds.bbci.co.uk/news/uk/rss.xml"

// bbcStrategies targets BBC article page markup. The named byline
// container comes first; the meta tag is the generic fallback.
var bbcStrategies = []scraper.Strategy{
	scraper.Selector(`[data-testid="byline-new-contributors"] span`),
	scraper.Selector(`[data-component="byline-block"] a`),
	scraper.MetaAuthor(),
}

// NewBBC builds the BBC News adapter. The BBC feed carries no author
// field, so every entry requires one page fetch for the byline.
func NewBBC(feedURL string, feeds *scraper.FeedParser, pages *fetcher.Client, pacer Pacer, logger *slog.Logger) *FeedAdapter {
	return NewFeedAdapter(FeedSource{
		Name:         entity.SourceBBC,
		FeedURL:      feedURL,
		AuthorInFeed: false,
		Strategies:   bbcStrategies,
	}, feeds, pages, pacer, logger)
}
