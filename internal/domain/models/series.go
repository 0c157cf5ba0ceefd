package models

import "time"

// DayFormat is the calendar-day label format used across all series.
const DayFormat = "2006-01-02"

// TimePoint is one daily bucket of an aggregated series.
// Date labels within one series are unique and ascend chronologically.
type TimePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	// Delta is the percentage change vs the previous bucket, rounded to
	// one decimal for display. Zero when the previous bucket is zero.
	Delta float64 `json:"delta,omitempty"`
}

// RawRecord is a single time-stamped observation before bucketing. A record
// is identified by (asset, timestamp) within its series kind; stores replace
// on that key so re-ingesting the same day never duplicates data.
type RawRecord struct {
	Asset     string
	Timestamp time.Time
	Value     float64
}

// Series pairs a kind label with its daily buckets.
type Series struct {
	Kind   string      `json:"kind"`
	Points []TimePoint `json:"points"`
}
