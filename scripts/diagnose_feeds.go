// Standalone diagnostic for the configured news sources. It fetches each
// RSS feed and the Guardian listing endpoint once, reports status, item
// counts and response times, and writes a JSON report next to the text
// output. Useful when a source suddenly contributes zero articles.
//
// Run with: go run scripts/diagnose_feeds.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/mmcdole/gofeed"
)

// SourceDiagnostic is the per-source result of one diagnostic pass.
type SourceDiagnostic struct {
	Name           string `json:"name"`
	URL            string `json:"url"`
	Status         string `json:"status"` // "OK", "HTTP_ERROR", "PARSE_ERROR", "EMPTY", "TIMEOUT"
	HTTPCode       int    `json:"http_code"`
	ItemCount      int    `json:"item_count"`
	LatestDate     string `json:"latest_date,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
	ResponseTimeMS int64  `json:"response_time_ms"`
}

type target struct {
	name string
	url  string
	api  bool
}

func main() {
	apiKey := os.Getenv("GUARDIAN_API_KEY")
	if apiKey == "" {
		apiKey = "test"
	}
	guardianURL := "https://content.guardianapis.com/search?" + url.Values{
		"section":   {"uk-news"},
		"page-size": {"5"},
		"api-key":   {apiKey},
	}.Encode()

	targets := []target{
		{name: "BBC News", url: "https://feeds.bbci.co.uk/news/uk/rss.xml"},
		{name: "The Guardian", url: guardianURL, api: true},
		{name: "The Independent", url: "https://www.independent.co.uk/news/uk/rss"},
		{name: "Sky News", url: "https://feeds.skynews.com/feeds/rss/uk.xml"},
	}

	log.Printf("Diagnosing %d sources...", len(targets))

	diagnostics := make([]SourceDiagnostic, 0, len(targets))
	for i, t := range targets {
		log.Printf("[%d/%d] %s", i+1, len(targets), t.name)
		diagnostics = append(diagnostics, diagnose(t, 30*time.Second))
		time.Sleep(500 * time.Millisecond)
	}

	printReport(diagnostics)
	writeJSONReport(diagnostics)
}

func diagnose(t target, timeout time.Duration) SourceDiagnostic {
	diag := SourceDiagnostic{Name: t.name, URL: t.url}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; UKNewsScraper/1.0; for personal/research use)")
	req.Header.Set("Accept-Language", "en-GB,en;q=0.9")

	start := time.Now()
	resp, err := http.DefaultClient.Do(req)
	diag.ResponseTimeMS = time.Since(start).Milliseconds()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			diag.Status = "TIMEOUT"
			diag.ErrorMessage = fmt.Sprintf("request timeout after %v", timeout)
		} else {
			diag.Status = "HTTP_ERROR"
			diag.ErrorMessage = err.Error()
		}
		return diag
	}
	defer resp.Body.Close()

	diag.HTTPCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = resp.Status
		return diag
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}

	if t.api {
		return diagnoseAPI(diag, body)
	}
	return diagnoseFeed(diag, body)
}

func diagnoseFeed(diag SourceDiagnostic, body []byte) SourceDiagnostic {
	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		diag.Status = "PARSE_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}

	diag.ItemCount = len(feed.Items)
	if diag.ItemCount == 0 {
		diag.Status = "EMPTY"
		diag.ErrorMessage = "feed has no items"
		return diag
	}
	diag.LatestDate = feed.Items[0].Published
	diag.Status = "OK"
	return diag
}

func diagnoseAPI(diag SourceDiagnostic, body []byte) SourceDiagnostic {
	var payload struct {
		Response struct {
			Status  string `json:"status"`
			Results []struct {
				WebPublicationDate string `json:"webPublicationDate"`
			} `json:"results"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		diag.Status = "PARSE_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}

	diag.ItemCount = len(payload.Response.Results)
	if diag.ItemCount == 0 {
		diag.Status = "EMPTY"
		diag.ErrorMessage = "listing returned no results"
		return diag
	}
	diag.LatestDate = payload.Response.Results[0].WebPublicationDate
	diag.Status = "OK"
	return diag
}

func printReport(diagnostics []SourceDiagnostic) {
	fmt.Println()
	fmt.Println("Source diagnostics")
	fmt.Println("==================")
	for _, d := range diagnostics {
		fmt.Printf("%-16s %-12s items=%-4d %4dms", d.Name, d.Status, d.ItemCount, d.ResponseTimeMS)
		if d.ErrorMessage != "" {
			fmt.Printf("  %s", d.ErrorMessage)
		}
		fmt.Println()
	}
}

func writeJSONReport(diagnostics []SourceDiagnostic) {
	raw, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		log.Printf("failed to marshal report: %v", err)
		return
	}
	if err := os.WriteFile("feed_diagnostics.json", raw, 0o644); err != nil {
		log.Printf("failed to write report: %v", err)
		return
	}
	log.Println("wrote feed_diagnostics.json")
}
