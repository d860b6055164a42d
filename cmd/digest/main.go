// Command digest runs one scrape across all UK news sources, writes the
// article exports and the digest archive, and prints the JSON envelope to
// stdout for the n8n workflow. Logs go to stderr so stdout stays pure JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/sufideen/uk-news-scraper/internal/config"
	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/infra/fetcher"
	"github.com/sufideen/uk-news-scraper/internal/infra/scraper"
	"github.com/sufideen/uk-news-scraper/internal/infra/sources"
	"github.com/sufideen/uk-news-scraper/internal/observability/logging"
	"github.com/sufideen/uk-news-scraper/internal/resilience/circuitbreaker"
	"github.com/sufideen/uk-news-scraper/internal/usecase/collect"
	"github.com/sufideen/uk-news-scraper/internal/usecase/pipeline"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration error", slog.Any("error", err))
		os.Exit(1)
	}

	p := buildPipeline(cfg, logger)

	env, result, err := p.Execute(context.Background())
	if err != nil {
		if errors.Is(err, entity.ErrNoArticles) {
			fmt.Fprintln(os.Stderr, "ERROR: No articles collected from any source.")
		} else {
			logger.Error("run failed", slog.Any("error", err))
		}
		os.Exit(1)
	}

	if err := p.ExportAll(result.Articles, cfg.OutputDir); err != nil {
		logger.Error("some exports failed", slog.Any("error", err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(env); err != nil {
		logger.Error("failed to encode envelope", slog.Any("error", err))
		os.Exit(1)
	}
}

// buildPipeline wires the fetch clients, source adapters, and collector.
func buildPipeline(cfg *config.Config, logger *slog.Logger) *pipeline.Pipeline {
	fetchCfg := fetcher.Config{
		UserAgent:   cfg.UserAgent,
		Timeout:     cfg.RequestTimeout,
		MaxBodySize: fetcher.DefaultConfig(cfg.UserAgent).MaxBodySize,
	}
	pages := fetcher.New(fetchCfg, circuitbreaker.New(circuitbreaker.PageScrapeConfig("article-pages")), logger)
	api := fetcher.New(fetchCfg, circuitbreaker.New(circuitbreaker.ContentAPIConfig("guardian-api")), logger)
	feeds := scraper.NewFeedParser(cfg.UserAgent, cfg.RequestTimeout, logger)
	pacer := sources.NewRandomPacer(cfg.MinDelay, cfg.MaxDelay)

	adapters := []sources.Adapter{
		sources.NewBBC(orDefault(cfg.BBCFeedURL, sources.DefaultBBCFeedURL), feeds, pages, pacer, logger),
		sources.NewGuardian(orDefault(cfg.GuardianAPIURL, sources.DefaultGuardianAPIURL), cfg.GuardianAPIKey, api, pacer, logger),
		sources.NewIndependent(orDefault(cfg.IndependentFeedURL, sources.DefaultIndependentFeedURL), feeds, pages, pacer, logger),
		sources.NewSky(orDefault(cfg.SkyFeedURL, sources.DefaultSkyFeedURL), feeds, pages, pacer, logger),
	}

	collector := collect.NewService(adapters, cfg.Location(), logger)
	return pipeline.New(collector, cfg.DigestDir, cfg.Location(), logger)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
