// Package sources contains the per-outlet adapters that turn each outlet's
// native format (syndication feed or content API) into normalized Article
// records. Adapters are isolated: one adapter's failure never aborts
// another's, and every per-entry failure degrades to an empty field.
package sources

import (
	"context"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
)

// Adapter produces the normalized article list for one outlet.
//
// Collect returns the articles in listing order (newest first, as provided
// upstream). An error means the whole adapter contributed nothing; the
// aggregator logs it and continues with the remaining adapters.
type Adapter interface {
	Name() string
	Collect(ctx context.Context) ([]entity.Article, error)
}
