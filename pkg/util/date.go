package util

import (
	"strconv"
	"time"
)

const dayFormat = "2006-01-02"

// ParseTime tries RFC3339, a calendar day (2006-01-02), and unix seconds.
// Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(dayFormat, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}

// DayStart truncates t to the start of its UTC calendar day.
func DayStart(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// WindowStart returns the first day of an n-day window ending at end's day.
func WindowStart(end time.Time, n int) time.Time {
	return DayStart(end).AddDate(0, 0, -(n - 1))
}
