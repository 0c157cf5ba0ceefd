package aggregate

import (
	"math"
	"time"

	"TrendMatrix/internal/domain/models"
)

// Window describes the daily bucketing range: Days buckets ending at End's
// calendar day (inclusive).
type Window struct {
	End  time.Time
	Days int
}

// WindowEndingToday returns a window of n days ending today (UTC).
func WindowEndingToday(n int) Window {
	return Window{End: time.Now().UTC(), Days: n}
}

// DailyBuckets folds raw records into one bucket per calendar day, oldest
// first. Days with no records still produce a bucket with value 0; consumers
// rely on a dense, gap-free series for correct axis rendering. Values within
// a day are summed at full float64 precision.
func DailyBuckets(records []models.RawRecord, w Window) []models.TimePoint {
	if w.Days <= 0 {
		return nil
	}

	endDay := w.End.UTC().Truncate(24 * time.Hour)
	startDay := endDay.AddDate(0, 0, -(w.Days - 1))

	sums := make(map[string]float64, w.Days)
	for _, r := range records {
		day := r.Timestamp.UTC().Truncate(24 * time.Hour)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		sums[day.Format(models.DayFormat)] += r.Value
	}

	out := make([]models.TimePoint, 0, w.Days)
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		label := d.Format(models.DayFormat)
		out = append(out, models.TimePoint{Date: label, Value: sums[label]})
	}
	return out
}

// CountBuckets is DailyBuckets with every record weighted 1.
func CountBuckets(stamps []time.Time, w Window) []models.TimePoint {
	recs := make([]models.RawRecord, 0, len(stamps))
	for _, t := range stamps {
		recs = append(recs, models.RawRecord{Timestamp: t, Value: 1})
	}
	return DailyBuckets(recs, w)
}

// PercentDelta computes (cur-prev)/prev*100, defined as 0 when prev is 0 so
// the result is never NaN or Inf.
func PercentDelta(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return (cur - prev) / prev * 100
}

// Round1 rounds to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// WithDeltas returns a copy of series with per-bucket percentage deltas
// filled in, rounded to one decimal. The first bucket's delta is 0.
func WithDeltas(series []models.TimePoint) []models.TimePoint {
	out := make([]models.TimePoint, len(series))
	copy(out, series)
	for i := 1; i < len(out); i++ {
		out[i].Delta = Round1(PercentDelta(out[i].Value, out[i-1].Value))
	}
	return out
}

// MaxValue returns the maximum bucket value, or 0 for an empty series.
func MaxValue(series []models.TimePoint) float64 {
	max := 0.0
	for _, p := range series {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}
