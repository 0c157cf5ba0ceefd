package sentiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendMatrix/internal/domain/models"
)

func TestLabelFor(t *testing.T) {
	assert.Equal(t, LabelBearish, LabelFor(0))
	assert.Equal(t, LabelBearish, LabelFor(39))
	assert.Equal(t, LabelNeutral, LabelFor(40))
	assert.Equal(t, LabelNeutral, LabelFor(60))
	assert.Equal(t, LabelBullish, LabelFor(61))
	assert.Equal(t, LabelBullish, LabelFor(100))
}

func TestRuleScorer_NoEvidenceIsNeutral(t *testing.T) {
	score, label, err := NewRuleScorer().Analyze(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 50, score)
	assert.Equal(t, LabelNeutral, label)
}

func TestRuleScorer_StrongTrendsPullUp(t *testing.T) {
	sigs := []models.Signal{
		{Type: models.SignalTrend, Strength: 100},
		{Type: models.SignalTrend, Strength: 100},
		{Type: models.SignalMomentum, Strength: 100},
		{Type: models.SignalMomentum, Strength: 100},
	}

	score, label, err := NewRuleScorer().Analyze(context.Background(), sigs, nil)
	require.NoError(t, err)
	// 50 + 4 signals * 4 points * weight 1.0
	assert.Equal(t, 66, score)
	assert.Equal(t, LabelBullish, label)
}

func TestRuleScorer_StrongReversalsPullDown(t *testing.T) {
	sigs := []models.Signal{
		{Type: models.SignalReversal, Strength: 100},
		{Type: models.SignalReversal, Strength: 100},
		{Type: models.SignalReversal, Strength: 100},
	}

	score, label, err := NewRuleScorer().Analyze(context.Background(), sigs, nil)
	require.NoError(t, err)
	assert.Equal(t, 38, score)
	assert.Equal(t, LabelBearish, label)
}

func TestRuleScorer_WeakSignalsCountAgainst(t *testing.T) {
	// A weak trend signal (strength below 50) is bearish evidence.
	sigs := []models.Signal{{Type: models.SignalTrend, Strength: 0}}

	score, _, err := NewRuleScorer().Analyze(context.Background(), sigs, nil)
	require.NoError(t, err)
	assert.Equal(t, 46, score)
}

func TestRuleScorer_ActivityDeltaCapped(t *testing.T) {
	// 10x growth would be +900%; contribution is capped at +10 points.
	activity := []models.TimePoint{{Value: 10}, {Value: 100}}

	score, label, err := NewRuleScorer().Analyze(context.Background(), nil, activity)
	require.NoError(t, err)
	assert.Equal(t, 60, score)
	assert.Equal(t, LabelNeutral, label)

	// Collapse caps at -10.
	activity = []models.TimePoint{{Value: 100}, {Value: 1}}
	score, _, err = NewRuleScorer().Analyze(context.Background(), nil, activity)
	require.NoError(t, err)
	assert.Equal(t, 40, score)
}

func TestRuleScorer_ScoreStaysInRange(t *testing.T) {
	var sigs []models.Signal
	for i := 0; i < 100; i++ {
		sigs = append(sigs, models.Signal{Type: models.SignalTrend, Strength: 100})
	}

	score, label, err := NewRuleScorer().Analyze(context.Background(), sigs, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, score)
	assert.Equal(t, LabelBullish, label)
}

type stubAnalyzer struct {
	score int
	label string
	err   error
	calls int
}

func (s *stubAnalyzer) Analyze(context.Context, []models.Signal, []models.TimePoint) (int, string, error) {
	s.calls++
	return s.score, s.label, s.err
}

func TestFallback_PrimaryWins(t *testing.T) {
	primary := &stubAnalyzer{score: 70, label: LabelBullish}
	secondary := &stubAnalyzer{score: 50, label: LabelNeutral}
	f := &Fallback{Primary: primary, Secondary: secondary}

	score, label, err := f.Analyze(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 70, score)
	assert.Equal(t, LabelBullish, label)
	assert.Zero(t, secondary.calls)
}

func TestFallback_SecondaryOnError(t *testing.T) {
	primary := &stubAnalyzer{err: assert.AnError}
	secondary := &stubAnalyzer{score: 55, label: LabelNeutral}
	f := &Fallback{Primary: primary, Secondary: secondary}

	score, label, err := f.Analyze(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 55, score)
	assert.Equal(t, LabelNeutral, label)
	assert.Equal(t, 1, primary.calls)
}
