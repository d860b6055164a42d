package collect

import (
	"fmt"
	"time"
)

// Session labels attached to a run, selected by local wall-clock hour.
const (
	SessionMorning = "Morning Briefing"
	SessionEvening = "Evening Roundup"
)

// SessionLabel returns the session label for a local wall-clock hour:
// before noon it is the morning briefing, from noon on the evening roundup.
func SessionLabel(hour int) string {
	if hour < 12 {
		return SessionMorning
	}
	return SessionEvening
}

// Subject builds the digest email subject line for a session, for example
// "UK News Morning Briefing – Wed 18 Feb 2026".
func Subject(session string, localNow time.Time) string {
	return fmt.Sprintf("UK News %s – %s", session, localNow.Format("Mon 02 Jan 2006"))
}
