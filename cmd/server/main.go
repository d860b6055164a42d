// Command server exposes the scraper over HTTP for the n8n sidecar setup:
// GET /run triggers a full digest run, GET /health answers container
// healthchecks, and /metrics serves Prometheus metrics. A cron schedule
// can additionally trigger runs without an inbound request.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/sufideen/uk-news-scraper/internal/config"
	hhttp "github.com/sufideen/uk-news-scraper/internal/handler/http"
	"github.com/sufideen/uk-news-scraper/internal/infra/fetcher"
	"github.com/sufideen/uk-news-scraper/internal/infra/scraper"
	"github.com/sufideen/uk-news-scraper/internal/infra/sources"
	"github.com/sufideen/uk-news-scraper/internal/observability/logging"
	"github.com/sufideen/uk-news-scraper/internal/resilience/circuitbreaker"
	"github.com/sufideen/uk-news-scraper/internal/usecase/collect"
	"github.com/sufideen/uk-news-scraper/internal/usecase/pipeline"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration error", slog.Any("error", err))
		os.Exit(1)
	}

	p := buildPipeline(cfg, logger)

	router := hhttp.NewRouter(hhttp.RouterConfig{
		RateLimitEnabled: cfg.RateLimitEnabled,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
	}, p, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var scheduler *cron.Cron
	if cfg.CronSchedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.CronSchedule, func() {
			logger.Info("scheduled run starting", slog.String("schedule", cfg.CronSchedule))
			if _, _, err := p.Execute(ctx); err != nil {
				logger.Error("scheduled run failed", slog.Any("error", err))
			}
		})
		if err != nil {
			logger.Error("invalid cron schedule",
				slog.String("schedule", cfg.CronSchedule),
				slog.Any("error", err))
			os.Exit(1)
		}
		scheduler.Start()
		logger.Info("cron schedule active", slog.String("schedule", cfg.CronSchedule))
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("scraper server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
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
