package http

import (
	"net/http"

	"github.com/sufideen/uk-news-scraper/internal/handler/http/respond"
)

// HealthHandler handles GET /health for container healthchecks. The
// service has no backing stores to probe, so a reachable process is a
// healthy process.
type HealthHandler struct{}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
