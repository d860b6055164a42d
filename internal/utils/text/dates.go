package text

import (
	"time"

	"github.com/araddon/dateparse"
)

// isoUTC is the canonical output layout for normalized dates.
const isoUTC = "2006-01-02T15:04:05Z"

// NormalizeDate parses a raw date string in any common feed or API format
// (RFC 822 variants, ISO 8601 variants, and friends) and reformats it as
// an ISO-8601 UTC timestamp (YYYY-MM-DDTHH:MM:SSZ).
//
// Timestamps without an explicit timezone are assumed to be UTC. Empty
// input returns an empty string. If the input cannot be parsed, it is
// returned unchanged so the upstream signal is never lost.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}

	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return raw
	}

	return t.UTC().Format(isoUTC)
}
