// Package entity defines the core domain entities for the news digest pipeline.
// It contains the Article record produced by every source adapter, along with
// the run result consumed by the digest composer and the output writers.
package entity

import "time"

// Known source names. Adapters construct Articles with one of these;
// the digest composer uses them for its fixed ordering and colour accents.
const (
	SourceBBC         = "BBC News"
	SourceGuardian    = "The Guardian"
	SourceIndependent = "The Independent"
	SourceSky         = "Sky News"
)

// Article represents one normalized news article from any source.
// It is a value record: adapters construct a new instance per feed/API
// entry and never mutate it afterwards.
//
// PublishedDate is either a canonical ISO-8601 UTC timestamp
// (YYYY-MM-DDTHH:MM:SSZ) or, when the upstream date string could not be
// parsed, the raw upstream string verbatim. It is never fabricated.
type Article struct {
	Source        string `json:"source"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Summary       string `json:"summary"`
	Author        string `json:"author"`
	PublishedDate string `json:"published_date"`
}

// RunResult is the ephemeral product of one pipeline invocation.
// It is constructed fresh per run, handed to the digest composer and the
// writers, and never persisted as an object.
type RunResult struct {
	Articles    []Article
	Session     string
	GeneratedAt time.Time
}

// Total returns the number of collected articles.
func (r *RunResult) Total() int {
	return len(r.Articles)
}
