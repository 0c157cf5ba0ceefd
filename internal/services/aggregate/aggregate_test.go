package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendMatrix/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyBuckets_DenseWindow(t *testing.T) {
	end := day(2025, 6, 7)
	w := Window{End: end, Days: 7}

	// Records on only three of the seven days.
	recs := []models.RawRecord{
		{Timestamp: day(2025, 6, 1).Add(10 * time.Hour), Value: 5},
		{Timestamp: day(2025, 6, 1).Add(20 * time.Hour), Value: 3},
		{Timestamp: day(2025, 6, 4), Value: 7},
		{Timestamp: day(2025, 6, 7).Add(time.Minute), Value: 2},
	}

	got := DailyBuckets(recs, w)
	require.Len(t, got, 7, "window must be dense: one bucket per day")

	assert.Equal(t, "2025-06-01", got[0].Date)
	assert.Equal(t, "2025-06-07", got[6].Date)

	assert.Equal(t, 8.0, got[0].Value, "same-day records are summed")
	assert.Equal(t, 0.0, got[1].Value, "missing days are zero-filled")
	assert.Equal(t, 0.0, got[2].Value)
	assert.Equal(t, 7.0, got[3].Value)
	assert.Equal(t, 2.0, got[6].Value)

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Date, got[i].Date, "dates ascend")
	}
}

func TestDailyBuckets_IgnoresOutOfWindow(t *testing.T) {
	w := Window{End: day(2025, 6, 7), Days: 3}
	recs := []models.RawRecord{
		{Timestamp: day(2025, 6, 4), Value: 99}, // one day before window
		{Timestamp: day(2025, 6, 8), Value: 99}, // after window
		{Timestamp: day(2025, 6, 6), Value: 1},
	}

	got := DailyBuckets(recs, w)
	require.Len(t, got, 3)
	assert.Equal(t, 0.0, got[0].Value)
	assert.Equal(t, 1.0, got[1].Value)
	assert.Equal(t, 0.0, got[2].Value)
}

func TestDailyBuckets_NonPositiveWindow(t *testing.T) {
	assert.Nil(t, DailyBuckets(nil, Window{End: day(2025, 6, 7), Days: 0}))
	assert.Nil(t, DailyBuckets(nil, Window{End: day(2025, 6, 7), Days: -3}))
}

func TestCountBuckets(t *testing.T) {
	w := Window{End: day(2025, 6, 3), Days: 3}
	stamps := []time.Time{
		day(2025, 6, 1),
		day(2025, 6, 1).Add(5 * time.Hour),
		day(2025, 6, 3),
	}

	got := CountBuckets(stamps, w)
	require.Len(t, got, 3)
	assert.Equal(t, 2.0, got[0].Value)
	assert.Equal(t, 0.0, got[1].Value)
	assert.Equal(t, 1.0, got[2].Value)
}

func TestPercentDelta(t *testing.T) {
	tests := []struct {
		name      string
		cur, prev float64
		want      float64
	}{
		{"increase", 150, 100, 50},
		{"decrease", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"zero previous", 42, 0, 0},
		{"both zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentDelta(tt.cur, tt.prev))
		})
	}
}

func TestWithDeltas(t *testing.T) {
	series := []models.TimePoint{
		{Date: "2025-06-01", Value: 0},
		{Date: "2025-06-02", Value: 10},
		{Date: "2025-06-03", Value: 15},
		{Date: "2025-06-04", Value: 10},
	}

	got := WithDeltas(series)
	require.Len(t, got, 4)

	assert.Equal(t, 0.0, got[0].Delta, "first bucket has no predecessor")
	assert.Equal(t, 0.0, got[1].Delta, "delta over a zero bucket is zero, not Inf")
	assert.Equal(t, 50.0, got[2].Delta)
	assert.InDelta(t, -33.3, got[3].Delta, 0.0001, "deltas are rounded to one decimal")

	assert.Equal(t, 0.0, series[1].Delta, "input series is not mutated")
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 33.3, Round1(33.333))
	assert.Equal(t, -33.3, Round1(-33.333))
	assert.Equal(t, 2.5, Round1(2.45))
	assert.Equal(t, 0.0, Round1(0))
}

func TestMaxValue(t *testing.T) {
	assert.Equal(t, 0.0, MaxValue(nil))
	assert.Equal(t, 7.0, MaxValue([]models.TimePoint{{Value: 3}, {Value: 7}, {Value: 1}}))
}
