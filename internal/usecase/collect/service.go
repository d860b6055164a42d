// Package collect provides the aggregation use case: it runs every source
// adapter, merges their articles in fixed adapter-declaration order, and
// absorbs per-adapter failures so that a single broken outlet never aborts
// the run. The only fatal condition is an entirely empty collection.
package collect

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/infra/sources"
	"github.com/sufideen/uk-news-scraper/internal/observability/metrics"
)

// Service orchestrates one collection run across all source adapters.
//
// Adapters run concurrently (they are independent and each paces its own
// outbound requests), but results are always merged in the order the
// adapters were declared, never completion order, so output stays
// deterministic. No state is shared between runs: each invocation builds
// its own article buffer.
type Service struct {
	adapters []sources.Adapter
	location *time.Location
	logger   *slog.Logger

	// now is the clock used for the session label and the generation
	// timestamp. Overridable in tests.
	now func() time.Time
}

// NewService creates a collection service over the given adapters.
// The location is the local timezone used to pick the session label.
func NewService(adapters []sources.Adapter, location *time.Location, logger *slog.Logger) *Service {
	return &Service{
		adapters: adapters,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes all adapters and returns the combined run result.
// Per-adapter failures (errors and panics alike) are logged with the
// adapter's identity and contribute zero articles. Run fails only with
// entity.ErrNoArticles, when every adapter came back empty.
func (s *Service) Run(ctx context.Context) (*entity.RunResult, error) {
	start := s.now()
	results := make([][]entity.Article, len(s.adapters))

	var eg errgroup.Group
	for i, adapter := range s.adapters {
		i, adapter := i, adapter
		eg.Go(func() error {
			articles, err := s.collectOne(ctx, adapter)
			if err != nil {
				metrics.RecordSourceFailure(adapter.Name())
				s.logger.Error("source adapter failed",
					slog.String("source", adapter.Name()),
					slog.Any("error", err))
				return nil // failure isolation: keep the other adapters running
			}
			metrics.RecordArticlesCollected(adapter.Name(), len(articles))
			s.logger.Info("source collected",
				slog.String("source", adapter.Name()),
				slog.Int("articles", len(articles)))
			results[i] = articles
			return nil
		})
	}
	_ = eg.Wait()

	var combined []entity.Article
	for _, articles := range results {
		combined = append(combined, articles...)
	}

	duration := s.now().Sub(start)
	metrics.RecordRun(duration, len(combined))
	s.logger.Info("collection run finished",
		slog.Int("total", len(combined)),
		slog.Duration("duration", duration))

	if len(combined) == 0 {
		return nil, entity.ErrNoArticles
	}

	localNow := s.now().In(s.location)
	return &entity.RunResult{
		Articles:    combined,
		Session:     SessionLabel(localNow.Hour()),
		GeneratedAt: s.now().UTC(),
	}, nil
}

// collectOne invokes a single adapter with panic containment. A panicking
// adapter is indistinguishable from an erroring one at this boundary.
func (s *Service) collectOne(ctx context.Context, adapter sources.Adapter) (articles []entity.Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			articles = nil
			err = fmt.Errorf("adapter panicked: %v", r)
		}
	}()

	return adapter.Collect(ctx)
}
