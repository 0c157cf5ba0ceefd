package util

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-06-01T12:30:00Z", true},
		{"2025-06-01", true},
		{"1717200000", true},
		{"", false},
		{"not-a-date", false},
	}
	for _, c := range cases {
		_, ok := ParseTime(c.in)
		if ok != c.ok {
			t.Errorf("ParseTime(%q) ok = %v, want %v", c.in, ok, c.ok)
		}
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := ParseTimeDefault("garbage", def); !got.Equal(def) {
		t.Errorf("expected default, got %v", got)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := ParseTimeDefault("2025-06-01", def); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDayStart(t *testing.T) {
	in := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := DayStart(in); !got.Equal(want) {
		t.Errorf("DayStart = %v, want %v", got, want)
	}
}

func TestWindowStart(t *testing.T) {
	end := time.Date(2025, 6, 7, 15, 0, 0, 0, time.UTC)
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := WindowStart(end, 7); !got.Equal(want) {
		t.Errorf("WindowStart = %v, want %v", got, want)
	}
}
