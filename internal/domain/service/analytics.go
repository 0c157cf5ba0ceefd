package service

import (
	"context"

	"TrendMatrix/internal/domain/models"
)

// SentimentAnalyzer scores overall market sentiment from recent signals
// and activity. Score is within [0,100]; Label is bearish/neutral/bullish.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, signals []models.Signal, activity []models.TimePoint) (score int, label string, err error)
}

// SignalGenerator derives signals from a raw price/volume series.
type SignalGenerator interface {
	Generate(ctx context.Context, asset string, prices, volumes []models.RawRecord) ([]models.Signal, error)
}

// ActivityEstimator tracks distinct active assets per day and reports the
// current activity percentage relative to the tracked universe.
type ActivityEstimator interface {
	Observe(asset string)
	ActivityPct() float64
}
