// Package pipeline wires a full scrape-to-digest run: collect from every
// source, compose the email digest, archive it, and build the JSON envelope
// for downstream automation. Both the CLI and the HTTP service drive runs
// through this package.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/infra/writer"
	"github.com/sufideen/uk-news-scraper/internal/usecase/collect"
	"github.com/sufideen/uk-news-scraper/internal/usecase/digest"
)

// Collector runs one collection pass across all sources.
type Collector interface {
	Run(ctx context.Context) (*entity.RunResult, error)
}

// Pipeline executes complete digest runs.
type Pipeline struct {
	collector Collector
	digestDir string
	location  *time.Location
	logger    *slog.Logger

	now func() time.Time
}

// New builds a pipeline. digestDir is where timestamped digest HTML files
// are archived; location is the local timezone for subjects and filenames.
func New(collector Collector, digestDir string, location *time.Location, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		collector: collector,
		digestDir: digestDir,
		location:  location,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute performs one run: collect, compose, archive, envelope.
// The collector's failure isolation applies, so Execute fails only when
// no source produced anything or the digest file cannot be written.
func (p *Pipeline) Execute(ctx context.Context) (*digest.Envelope, *entity.RunResult, error) {
	result, err := p.collector.Run(ctx)
	if err != nil {
		return nil, nil, err
	}

	localNow := p.now().In(p.location)
	subject := collect.Subject(result.Session, localNow)
	htmlBody := digest.Compose(result.Articles, result.Session, p.now())

	savedFile, err := writer.SaveDigest(p.digestDir, htmlBody, result.Session, localNow)
	if err != nil {
		return nil, nil, err
	}
	p.logger.Info("digest archived", slog.String("file", savedFile))

	env := digest.NewEnvelope(subject, htmlBody, result.Session, savedFile, result.Total())
	return env, result, nil
}

// ExportAll writes the per-run article exports (CSV, JSON, HTML page, ODT)
// under outputDir. Each export failure is logged and skipped; the first
// error is returned after all formats have been attempted.
func (p *Pipeline) ExportAll(articles []entity.Article, outputDir string) error {
	now := p.now()
	exports := []struct {
		name string
		save func() error
	}{
		{"news_articles.csv", func() error {
			return writer.SaveCSV(articles, filepath.Join(outputDir, "news_articles.csv"))
		}},
		{"news_articles.json", func() error {
			return writer.SaveJSON(articles, filepath.Join(outputDir, "news_articles.json"), now)
		}},
		{"news_articles.html", func() error {
			return writer.SaveHTML(articles, filepath.Join(outputDir, "news_articles.html"), now)
		}},
		{"news_articles.odt", func() error {
			return writer.SaveODT(articles, filepath.Join(outputDir, "news_articles.odt"), now)
		}},
	}

	var firstErr error
	for _, e := range exports {
		if err := e.save(); err != nil {
			p.logger.Error("export failed",
				slog.String("file", e.name),
				slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		p.logger.Info("export written",
			slog.String("file", e.name),
			slog.Int("articles", len(articles)))
	}
	return firstErr
}
