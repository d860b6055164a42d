package collect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/infra/sources"
	"github.com/sufideen/uk-news-scraper/internal/observability/logging"
)

// stubAdapter is a canned source adapter for aggregation tests.
type stubAdapter struct {
	name     string
	articles []entity.Article
	err      error
	panics   bool
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Collect(ctx context.Context) ([]entity.Article, error) {
	if s.panics {
		panic("adapter blew up")
	}
	return s.articles, s.err
}

func fakeArticles(source string, n int) []entity.Article {
	out := make([]entity.Article, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.Article{
			Source: source,
			Title:  source + " story",
			URL:    "https://example.com/" + source,
		})
	}
	return out
}

func newTestService(t *testing.T, stubs ...*stubAdapter) *Service {
	t.Helper()
	adapters := make([]sources.Adapter, 0, len(stubs))
	for _, s := range stubs {
		adapters = append(adapters, s)
	}
	svc := NewService(adapters, time.UTC, logging.NewTextLogger())
	svc.now = func() time.Time { return time.Date(2026, 2, 18, 7, 0, 0, 0, time.UTC) }
	return svc
}

func TestRun_MergesInDeclarationOrder(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{name: "A", articles: fakeArticles("A", 2)},
		&stubAdapter{name: "B", articles: fakeArticles("B", 3)},
	)

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, result.Total())

	var order []string
	for _, a := range result.Articles {
		order = append(order, a.Source)
	}
	want := []string{"A", "A", "B", "B", "B"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("merge order mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_OneAdapterFailsOthersSucceed(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{name: "A", articles: fakeArticles("A", 2)},
		&stubAdapter{name: "B", err: errors.New("api down")},
		&stubAdapter{name: "C", articles: fakeArticles("C", 1)},
		&stubAdapter{name: "D", articles: fakeArticles("D", 4)},
	)

	result, err := svc.Run(context.Background())
	require.NoError(t, err, "partial success is still a success")
	assert.Equal(t, 7, result.Total(), "combined count equals the sum of the successful adapters")
}

func TestRun_PanickingAdapterIsContained(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{name: "A", panics: true},
		&stubAdapter{name: "B", articles: fakeArticles("B", 1)},
	)

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total())
}

func TestRun_AllAdaptersEmptyOrFailing(t *testing.T) {
	svc := newTestService(t,
		&stubAdapter{name: "A", err: errors.New("down")},
		&stubAdapter{name: "B"},
		&stubAdapter{name: "C", panics: true},
		&stubAdapter{name: "D"},
	)

	_, err := svc.Run(context.Background())
	require.ErrorIs(t, err, entity.ErrNoArticles)
}

func TestRun_SessionLabelFromLocalHour(t *testing.T) {
	svc := newTestService(t, &stubAdapter{name: "A", articles: fakeArticles("A", 1)})

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SessionMorning, result.Session, "07:00 local is a morning run")

	svc.now = func() time.Time { return time.Date(2026, 2, 18, 19, 0, 0, 0, time.UTC) }
	result, err = svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SessionEvening, result.Session)
}

func TestSessionLabel(t *testing.T) {
	assert.Equal(t, SessionMorning, SessionLabel(0))
	assert.Equal(t, SessionMorning, SessionLabel(11))
	assert.Equal(t, SessionEvening, SessionLabel(12))
	assert.Equal(t, SessionEvening, SessionLabel(23))
}

func TestSubject(t *testing.T) {
	localNow := time.Date(2026, 2, 18, 7, 0, 0, 0, time.UTC)
	want := "UK News Morning Briefing – Wed 18 Feb 2026"
	assert.Equal(t, want, Subject(SessionMorning, localNow))
}
