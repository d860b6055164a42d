package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
	"github.com/sufideen/uk-news-scraper/internal/handler/http/respond"
	"github.com/sufideen/uk-news-scraper/internal/usecase/digest"
)

// Runner executes one scrape-to-digest run and returns the envelope.
type Runner interface {
	Execute(ctx context.Context) (*digest.Envelope, *entity.RunResult, error)
}

// RunHandler handles GET /run: it triggers a full run and responds with
// the digest envelope. Runs are serialized; a request arriving while a run
// is in flight gets 409 instead of doubling the scrape traffic.
type RunHandler struct {
	Runner Runner
	Logger *slog.Logger

	mu sync.Mutex
}

func (h *RunHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.Error(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	if !h.mu.TryLock() {
		respond.Error(w, http.StatusConflict, errors.New("a run is already in progress"))
		return
	}
	defer h.mu.Unlock()

	h.Logger.Info("scrape request received")

	env, _, err := h.Runner.Execute(r.Context())
	if err != nil {
		h.Logger.Error("scrape failed", slog.Any("error", err))
		respond.Error(w, http.StatusInternalServerError, err)
		return
	}

	h.Logger.Info("scrape complete", slog.Int("articles", env.Articles))
	respond.JSON(w, http.StatusOK, env)
}
