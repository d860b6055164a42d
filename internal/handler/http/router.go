package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sufideen/uk-news-scraper/internal/handler/http/requestid"
	"github.com/sufideen/uk-news-scraper/internal/handler/http/respond"
)

// RouterConfig carries the settings the HTTP surface needs.
type RouterConfig struct {
	RateLimitEnabled bool
	RateLimitRPS     int
	RateLimitBurst   int
}

// NewRouter assembles the service routes with the standard middleware
// stack: request ID, recovery, logging, and (optionally) rate limiting.
func NewRouter(cfg RouterConfig, runner Runner, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/run", &RunHandler{Runner: runner, Logger: logger})
	mux.Handle("/health", &HealthHandler{})
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, errors.New("not found, use GET /run or GET /health"))
	})

	middlewares := []Middleware{
		requestid.Middleware,
		Recover(logger),
		Logging(logger),
	}
	if cfg.RateLimitEnabled {
		middlewares = append(middlewares, RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	return Chain(mux, middlewares...)
}
