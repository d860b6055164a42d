package metrics

import "time"

// RecordArticlesCollected records the number of articles an adapter contributed.
func RecordArticlesCollected(source string, count int) {
	ArticlesCollectedTotal.WithLabelValues(source).Add(float64(count))
}

// RecordSourceFailure records an adapter-level failure.
func RecordSourceFailure(source string) {
	SourceFailuresTotal.WithLabelValues(source).Inc()
}

// RecordFetchFailure records an outbound fetch failure.
// Kind should be one of "timeout", "http_status", or "network".
func RecordFetchFailure(kind string) {
	FetchFailuresTotal.WithLabelValues(kind).Inc()
}

// RecordRun records the duration and outcome of one pipeline run.
func RecordRun(duration time.Duration, collected int) {
	RunDuration.Observe(duration.Seconds())
	outcome := "success"
	if collected == 0 {
		outcome = "empty"
	}
	RunsTotal.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest records an HTTP request with its metadata.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
