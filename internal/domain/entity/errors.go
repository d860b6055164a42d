package entity

import "errors"

// Sentinel errors for pipeline operations.
var (
	// ErrNoArticles indicates that every source adapter contributed zero
	// articles. This is the only fatal condition of a pipeline run.
	ErrNoArticles = errors.New("no articles collected from any source")
)
