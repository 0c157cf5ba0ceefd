package signals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendMatrix/internal/domain/models"
)

func records(values []float64) []models.RawRecord {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]models.RawRecord, len(values))
	for i, v := range values {
		out[i] = models.RawRecord{Timestamp: base.AddDate(0, 0, i), Value: v}
	}
	return out
}

func flat(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestGenerate_FlatSeriesIsQuiet(t *testing.T) {
	g := NewGenerator()

	sigs, err := g.Generate(context.Background(), "SOL", records(flat(30, 100)), records(flat(30, 1000)))
	require.NoError(t, err)
	assert.Empty(t, sigs, "a flat market produces no signals")
}

func TestGenerate_TrendBreakout(t *testing.T) {
	g := NewGenerator()

	// 29 days at 100, then a 10% pop: above the 20-day MA by well over 2%.
	closes := append(flat(29, 100), 110)
	sigs, err := g.Generate(context.Background(), "SOL", records(closes), nil)
	require.NoError(t, err)

	var trend *models.Signal
	for i := range sigs {
		if sigs[i].Type == models.SignalTrend {
			trend = &sigs[i]
		}
	}
	require.NotNil(t, trend, "trend detector should fire")
	assert.Equal(t, "SOL", trend.Asset)
	assert.Equal(t, "active", trend.Status)
	assert.NotEmpty(t, trend.ID)
	assert.GreaterOrEqual(t, trend.Strength, 0)
	assert.LessOrEqual(t, trend.Strength, 100)
}

func TestGenerate_MomentumMove(t *testing.T) {
	g := NewGenerator()

	// 5% gain over the 5-day lookback.
	closes := append(flat(25, 100), 100, 101, 102, 103, 105)
	sigs, err := g.Generate(context.Background(), "SOL", records(closes), nil)
	require.NoError(t, err)

	found := false
	for _, s := range sigs {
		if s.Type == models.SignalMomentum {
			found = true
			assert.Greater(t, s.Strength, 50, "upward momentum scores above neutral")
		}
	}
	assert.True(t, found, "momentum detector should fire on a 5%% move")
}

func TestGenerate_ReversalOnMonotonicClimb(t *testing.T) {
	g := NewGenerator()

	// Strictly rising closes drive RSI to 100: overbought reversal.
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	sigs, err := g.Generate(context.Background(), "SOL", records(closes), nil)
	require.NoError(t, err)

	found := false
	for _, s := range sigs {
		if s.Type == models.SignalReversal {
			found = true
			assert.Equal(t, models.LevelStrong, s.Level, "RSI 100 is maximal strength")
		}
	}
	assert.True(t, found, "reversal detector should fire at RSI extremes")
}

func TestGenerate_VolumeSpike(t *testing.T) {
	g := NewGenerator()

	vols := append(flat(29, 1000), 3000) // 3x the trailing average
	sigs, err := g.Generate(context.Background(), "SOL", nil, records(vols))
	require.NoError(t, err)

	require.Len(t, sigs, 1)
	assert.Equal(t, models.SignalVolume, sigs[0].Type)
}

func TestGenerate_ShortSeries(t *testing.T) {
	g := NewGenerator()

	sigs, err := g.Generate(context.Background(), "SOL", records([]float64{1, 2}), records([]float64{10}))
	require.NoError(t, err)
	assert.Empty(t, sigs, "detectors need their full lookback before firing")
}

func TestSMA(t *testing.T) {
	got, err := SMA([]float64{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got, "SMA uses the trailing window")

	_, err = SMA([]float64{1, 2}, 3)
	assert.Error(t, err)

	_, err = SMA([]float64{1, 2, 3}, 0)
	assert.Error(t, err)
}

func TestRSI(t *testing.T) {
	assert.Equal(t, 50.0, RSI([]float64{1, 2, 3}, 14), "insufficient data is neutral")

	rising := make([]float64, 20)
	for i := range rising {
		rising[i] = float64(i)
	}
	assert.Equal(t, 100.0, RSI(rising, 14), "all gains saturate RSI")

	falling := make([]float64, 20)
	for i := range falling {
		falling[i] = float64(20 - i)
	}
	assert.Less(t, RSI(falling, 14), 1.0, "all losses drive RSI to the floor")
}

func TestClassify(t *testing.T) {
	assert.Equal(t, models.LevelWeak, Classify(0))
	assert.Equal(t, models.LevelWeak, Classify(39))
	assert.Equal(t, models.LevelModerate, Classify(40))
	assert.Equal(t, models.LevelModerate, Classify(74))
	assert.Equal(t, models.LevelStrong, Classify(75))
	assert.Equal(t, models.LevelStrong, Classify(100))
}
