package writer

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sufideen/uk-news-scraper/internal/domain/entity"
)

const htmlPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>UK News Articles</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 2rem; color: #222; }
    h1   { font-size: 1.6rem; margin-bottom: 0.25rem; }
    p.meta { color: #666; font-size: 0.85rem; margin-bottom: 1.5rem; }
    table { border-collapse: collapse; width: 100%%; font-size: 0.9rem; }
    th    { background: #1a73e8; color: #fff; padding: 0.6rem 0.8rem; text-align: left; }
    td    { padding: 0.5rem 0.8rem; border-bottom: 1px solid #ddd; vertical-align: top; }
    tr:hover td { background: #f0f7ff; }
    td:nth-child(3) { max-width: 380px; }
    a { color: #1a73e8; text-decoration: none; }
    a:hover { text-decoration: underline; }
  </style>
</head>
<body>
  <h1>UK News Articles</h1>
  <p class="meta">Generated: %s &mdash; %d articles</p>
  <table>
    <thead>
      <tr>
        <th>Source</th>
        <th>Title</th>
        <th>Summary</th>
        <th>Author</th>
        <th>Published</th>
      </tr>
    </thead>
    <tbody>
%s    </tbody>
  </table>
</body>
</html>
`

// SaveHTML writes a standalone, styled HTML page listing every article in
// a single table. Unlike the email digest this page may carry a <style>
// block, since it is opened in a browser.
func SaveHTML(articles []entity.Article, path string, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var rows strings.Builder
	for _, a := range articles {
		fmt.Fprintf(&rows,
			"  <tr>\n"+
				"    <td>%s</td>\n"+
				"    <td><a href=\"%s\" target=\"_blank\">%s</a></td>\n"+
				"    <td>%s</td>\n"+
				"    <td>%s</td>\n"+
				"    <td>%s</td>\n"+
				"  </tr>\n",
			html.EscapeString(a.Source),
			html.EscapeString(a.URL),
			html.EscapeString(a.Title),
			html.EscapeString(a.Summary),
			html.EscapeString(a.Author),
			html.EscapeString(a.PublishedDate))
	}

	generatedAt := now.UTC().Format("2006-01-02 15:04 UTC")
	page := fmt.Sprintf(htmlPageTemplate, generatedAt, len(articles), rows.String())

	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write html file: %w", err)
	}
	return nil
}
