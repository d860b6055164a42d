// Package writer persists a run's articles to the export formats the
// downstream consumers expect: CSV, JSON, a standalone HTML page, an ODT
// document, and the timestamped digest archive.
package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
)

// csvHeader is the fixed column order of the CSV export.
var csvHeader = []string{"source", "title", "url", "summary", "author", "published_date"}

// SaveCSV writes the articles to filepath as UTF-8 CSV, creating parent
// directories as needed. The header row is always written, even for an
// empty slice.
func SaveCSV(articles []entity.Article, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range articles {
		record := []string{a.Source, a.Title, a.URL, a.Summary, a.Author, a.PublishedDate}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
