package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sufideen/uk-news-scraper/internal/infra/scraper"
	"github.com/sufideen/uk-news-scraper/internal/observability/logging"
)

func newFeedParser() *scraper.FeedParser {
	return scraper.NewFeedParser("UKNewsScraper/test", 10*time.Second, logging.NewTextLogger())
}

func serveBody(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		if _, err := w.Write([]byte(body)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFeedParser_Parse_RSS(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>UK Feed</title>
    <link>https://example.com</link>
    <item>
      <title> First story </title>
      <link>https://example.com/first</link>
      <description>&lt;p&gt;First summary&lt;/p&gt;</description>
      <pubDate>Mon, 01 Jan 2024 09:00:00 GMT</pubDate>
      <dc:creator>Jane Reporter</dc:creator>
    </item>
    <item>
      <title>Second story</title>
      <link>https://example.com/second</link>
    </item>
  </channel>
</rss>`
	server := serveBody(t, "application/rss+xml", rss)

	entries := newFeedParser().Parse(context.Background(), server.URL)
	if len(entries) != 2 {
		t.Fatalf("entries length = %d, want 2", len(entries))
	}

	first := entries[0]
	if first.Title != "First story" {
		t.Errorf("entries[0].Title = %q, want %q", first.Title, "First story")
	}
	if first.Link != "https://example.com/first" {
		t.Errorf("entries[0].Link = %q", first.Link)
	}
	if first.Published != "Mon, 01 Jan 2024 09:00:00 GMT" {
		t.Errorf("entries[0].Published = %q", first.Published)
	}
	if first.Author != "Jane Reporter" {
		t.Errorf("entries[0].Author = %q, want dc:creator byline", first.Author)
	}

	second := entries[1]
	if second.Summary != "" || second.Published != "" || second.Author != "" {
		t.Errorf("entries[1] optional fields = %+v, want empty strings", second)
	}
}

func TestFeedParser_Parse_EmptyFeed(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Empty</title>
    <link>https://example.com</link>
  </channel>
</rss>`
	server := serveBody(t, "application/rss+xml", rss)

	entries := newFeedParser().Parse(context.Background(), server.URL)
	if len(entries) != 0 {
		t.Errorf("entries length = %d, want 0", len(entries))
	}
}

func TestFeedParser_Parse_NotAFeed(t *testing.T) {
	server := serveBody(t, "text/html", "<html><body>not a feed</body></html>")

	// A structural parse error is an empty contribution, not a panic or error.
	entries := newFeedParser().Parse(context.Background(), server.URL)
	if len(entries) != 0 {
		t.Errorf("entries length = %d, want 0", len(entries))
	}
}

func TestFeedParser_Parse_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	if entries := newFeedParser().Parse(context.Background(), url); len(entries) != 0 {
		t.Errorf("entries length = %d for unreachable feed, want 0", len(entries))
	}
}
