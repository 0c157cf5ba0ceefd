package signals

import (
	"context"
	"math"
	"time"

	"TrendMatrix/internal/domain/models"

	"github.com/google/uuid"
)

const (
	trendPeriod       = 20
	momentumLookback  = 5
	rsiPeriod         = 14
	volumeLookback    = 20
	volumeSpikeFactor = 2.0
)

// Generator derives ecosystem signals from raw price/volume series.
// It is stateless; every call evaluates the series it is handed.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a signal generator.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate inspects the asset's price and volume series and emits one signal
// per detector that fires. Strength is always clamped to [0,100].
func (g *Generator) Generate(_ context.Context, asset string, prices, volumes []models.RawRecord) ([]models.Signal, error) {
	closes := values(prices)
	vols := values(volumes)

	out := make([]models.Signal, 0, 4)
	if s, ok := g.detectTrend(asset, closes); ok {
		out = append(out, s)
	}
	if s, ok := g.detectMomentum(asset, closes); ok {
		out = append(out, s)
	}
	if s, ok := g.detectReversal(asset, closes); ok {
		out = append(out, s)
	}
	if s, ok := g.detectVolumeSpike(asset, vols); ok {
		out = append(out, s)
	}
	return out, nil
}

// detectTrend fires when the last close deviates from its moving average by
// more than 2%.
func (g *Generator) detectTrend(asset string, closes []float64) (models.Signal, bool) {
	ma, err := SMA(closes, trendPeriod)
	if err != nil || ma == 0 {
		return models.Signal{}, false
	}
	dev := (closes[len(closes)-1] - ma) / ma
	if math.Abs(dev) < 0.02 {
		return models.Signal{}, false
	}
	strength := models.ClampStrength(int(50 + dev*500))
	return g.newSignal(asset, models.SignalTrend, strength), true
}

// detectMomentum fires on a short-term return above 3% in either direction.
func (g *Generator) detectMomentum(asset string, closes []float64) (models.Signal, bool) {
	if len(closes) < momentumLookback+1 {
		return models.Signal{}, false
	}
	prev := closes[len(closes)-1-momentumLookback]
	if prev == 0 {
		return models.Signal{}, false
	}
	ret := (closes[len(closes)-1] - prev) / prev
	if math.Abs(ret) < 0.03 {
		return models.Signal{}, false
	}
	strength := models.ClampStrength(int(50 + ret*400))
	return g.newSignal(asset, models.SignalMomentum, strength), true
}

// detectReversal fires at RSI extremes (<30 oversold, >70 overbought).
func (g *Generator) detectReversal(asset string, closes []float64) (models.Signal, bool) {
	rsi := RSI(closes, rsiPeriod)
	if rsi >= 30 && rsi <= 70 {
		return models.Signal{}, false
	}
	strength := models.ClampStrength(int(math.Abs(rsi-50) * 2))
	return g.newSignal(asset, models.SignalReversal, strength), true
}

// detectVolumeSpike fires when the last volume exceeds twice its trailing
// average.
func (g *Generator) detectVolumeSpike(asset string, vols []float64) (models.Signal, bool) {
	avg, err := SMA(vols, volumeLookback)
	if err != nil || avg == 0 {
		return models.Signal{}, false
	}
	ratio := vols[len(vols)-1] / avg
	if ratio < volumeSpikeFactor {
		return models.Signal{}, false
	}
	strength := models.ClampStrength(int(ratio / volumeSpikeFactor * 50))
	return g.newSignal(asset, models.SignalVolume, strength), true
}

func (g *Generator) newSignal(asset string, typ models.SignalType, strength int) models.Signal {
	s := models.Signal{
		ID:        uuid.NewString(),
		Asset:     asset,
		Type:      typ,
		Strength:  strength,
		Status:    "active",
		Timestamp: g.now().UTC(),
	}
	s.Level = Classify(s.Strength)
	return s
}

func values(recs []models.RawRecord) []float64 {
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = r.Value
	}
	return out
}
