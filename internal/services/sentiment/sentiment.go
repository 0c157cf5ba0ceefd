package sentiment

import (
	"context"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/services/aggregate"
)

// Labels for sentiment score bands.
const (
	LabelBearish = "bearish"
	LabelNeutral = "neutral"
	LabelBullish = "bullish"
)

// LabelFor maps a 0-100 sentiment score to its band label.
func LabelFor(score int) string {
	switch {
	case score < 40:
		return LabelBearish
	case score > 60:
		return LabelBullish
	default:
		return LabelNeutral
	}
}

// RuleScorer scores sentiment from the mix of recent signals and the trend
// of activity. It needs no external services and is the fallback analyzer.
type RuleScorer struct{}

// NewRuleScorer creates the rule-based analyzer.
func NewRuleScorer() *RuleScorer { return &RuleScorer{} }

// Analyze starts from a neutral 50 and shifts per bullish/bearish evidence:
// strong trend and momentum signals pull up, reversals pull down, and the
// tail-over-head activity delta nudges either way.
func (r *RuleScorer) Analyze(_ context.Context, signals []models.Signal, activity []models.TimePoint) (int, string, error) {
	score := 50.0

	for _, s := range signals {
		weight := float64(s.Strength-50) / 50 // [-1, 1]
		switch s.Type {
		case models.SignalTrend, models.SignalMomentum:
			score += 4 * weight
		case models.SignalReversal:
			score -= 4 * weight
		case models.SignalVolume:
			score += 2 * weight
		}
	}

	if n := len(activity); n >= 2 {
		delta := aggregate.PercentDelta(activity[n-1].Value, activity[0].Value)
		// cap the activity contribution at +-10 points
		if delta > 50 {
			delta = 50
		}
		if delta < -50 {
			delta = -50
		}
		score += delta / 5
	}

	final := models.ClampStrength(int(score + 0.5))
	return final, LabelFor(final), nil
}
