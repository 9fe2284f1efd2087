package window

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

// fixed "now" in a non-UTC zone so local-midnight behavior is visible.
var now = time.Date(2026, 3, 14, 15, 9, 26, 535897932, time.FixedZone("TST", 5*3600))

func TestResolveRecognizedTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  time.Time
	}{
		{"empty", "", time.Date(2026, 3, 14, 0, 0, 0, 0, now.Location())},
		{"today", "today", time.Date(2026, 3, 14, 0, 0, 0, 0, now.Location())},
		{"today uppercase", "TODAY", time.Date(2026, 3, 14, 0, 0, 0, 0, now.Location())},
		{"yesterday", "yesterday", time.Date(2026, 3, 13, 0, 0, 0, 0, now.Location())},
		{"explicit date", "2026-01-05", time.Date(2026, 1, 5, 0, 0, 0, 0, now.Location())},
		{"date with time-of-day discarded", "2026-01-05T13:45:00", time.Date(2026, 1, 5, 0, 0, 0, 0, now.Location())},
		{"surrounding whitespace", "  yesterday  ", time.Date(2026, 3, 13, 0, 0, 0, 0, now.Location())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.token, now)
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

// An unparseable token is a permissive default, not an error: it resolves to
// the same instant as "today".
func TestResolveUnparseableFallsBackToToday(t *testing.T) {
	for _, token := range []string{"not-a-date", "last tuesday", "2026-99-99", "20260105"} {
		got := Resolve(token, now)
		want := Resolve("today", now)
		if !got.Equal(want) {
			t.Errorf("Resolve(%q) = %v, want today's midnight %v", token, got, want)
		}
	}
}

// Property: for any token whatsoever, the resolved window has a zero
// time-of-day component and stays in the local zone.
func TestResolveAlwaysMidnight(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		token := rapid.String().Draw(rt, "token")

		got := Resolve(token, now)

		h, m, s := got.Clock()
		if h != 0 || m != 0 || s != 0 || got.Nanosecond() != 0 {
			rt.Fatalf("Resolve(%q) = %v, has non-zero time-of-day", token, got)
		}
		if got.Location() != now.Location() {
			rt.Fatalf("Resolve(%q) location = %v, want %v", token, got.Location(), now.Location())
		}
	})
}
