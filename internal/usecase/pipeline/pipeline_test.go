package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/observability/logging"
	"github.com/sufideen/uk-news-scraper/internal/usecase/collect"
)

type stubCollector struct {
	result *entity.RunResult
	err    error
}

func (s *stubCollector) Run(ctx context.Context) (*entity.RunResult, error) {
	return s.result, s.err
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	result := &entity.RunResult{
		Articles: []entity.Article{
			{Source: entity.SourceBBC, Title: "Storm batters coast", URL: "https://example.com/1"},
		},
		Session:     collect.SessionMorning,
		GeneratedAt: time.Date(2026, 2, 18, 7, 0, 0, 0, time.UTC),
	}

	p := New(&stubCollector{result: result}, dir, time.UTC, logging.NewTextLogger())
	p.now = func() time.Time { return time.Date(2026, 2, 18, 7, 0, 0, 0, time.UTC) }

	env, got, err := p.Execute(context.Background())
	require.NoError(t, err)
	assert.Same(t, result, got)

	assert.Equal(t, "UK News Morning Briefing – Wed 18 Feb 2026", env.Subject)
	assert.Equal(t, collect.SessionMorning, env.Session)
	assert.Equal(t, 1, env.Articles)
	assert.Contains(t, env.HTMLBody, "Storm batters coast")
	assert.True(t, strings.HasSuffix(env.SavedFile, "2026-02-18_07-00_morning.html"), env.SavedFile)

	raw, err := os.ReadFile(env.SavedFile)
	require.NoError(t, err)
	assert.Equal(t, env.HTMLBody, string(raw))
}

func TestExecute_CollectorFailure(t *testing.T) {
	p := New(&stubCollector{err: entity.ErrNoArticles}, t.TempDir(), time.UTC, logging.NewTextLogger())

	_, _, err := p.Execute(context.Background())
	require.ErrorIs(t, err, entity.ErrNoArticles)
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	p := New(&stubCollector{}, dir, time.UTC, logging.NewTextLogger())

	articles := []entity.Article{
		{Source: entity.SourceSky, Title: "Rail strike called off", URL: "https://example.com/2"},
	}
	require.NoError(t, p.ExportAll(articles, dir))

	for _, name := range []string{"news_articles.csv", "news_articles.json", "news_articles.html", "news_articles.odt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
