package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
)

// jsonExport is the envelope around the JSON article dump.
type jsonExport struct {
	GeneratedAt string           `json:"generated_at"`
	Total       int              `json:"total"`
	Articles    []entity.Article `json:"articles"`
}

// SaveJSON writes the articles to filepath as pretty-printed JSON with a
// generation timestamp and total count.
func SaveJSON(articles []entity.Article, path string, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if articles == nil {
		articles = []entity.Article{}
	}
	payload := jsonExport{
		GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		Total:       len(articles),
		Articles:    articles,
	}

	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal articles: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
