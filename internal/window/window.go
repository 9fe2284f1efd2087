// Package window resolves a user-supplied window token into the absolute
// lower-bound timestamp used to select commits.
package window

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when the token is neither empty nor a
// recognized keyword. Time-of-day components are discarded after parsing.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Resolve turns a window token into local midnight of the date it names.
// Tokens are case-insensitive. Empty and "today" mean the current date,
// "yesterday" the previous calendar date. Any other token is parsed as a
// calendar date; an unparseable token falls back to today rather than
// failing, so a typo still produces a report for the current day.
func Resolve(token string, now time.Time) time.Time {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "today":
		return midnight(now)
	case "yesterday":
		return midnight(now.AddDate(0, 0, -1))
	}

	trimmed := strings.TrimSpace(token)
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return midnight(parsed)
		}
	}
	return midnight(now)
}

// midnight truncates t to local midnight of its calendar date.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
