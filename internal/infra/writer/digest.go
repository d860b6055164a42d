package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveDigest archives one digest HTML fragment under dir with a local
// timestamped name like "2026-02-18_07-00_morning.html". It returns the
// path of the saved file.
func SaveDigest(dir, htmlBody, session string, localNow time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create digest dir: %w", err)
	}

	tag := "evening"
	if strings.Contains(session, "Morning") {
		tag = "morning"
	}
	name := localNow.Format("2006-01-02_15-04") + "_" + tag + ".html"
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(htmlBody), 0o644); err != nil {
		return "", fmt.Errorf("write digest file: %w", err)
	}
	return path, nil
}
