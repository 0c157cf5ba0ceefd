package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandScale_Layout(t *testing.T) {
	s := NewBandScale(0, 100, 4, 0.2)

	assert.Equal(t, 25.0, s.Step())
	assert.Equal(t, 20.0, s.BandWidth())
	assert.Equal(t, 2.5, s.Pos(0), "half the padding precedes the band")
	assert.Equal(t, 27.5, s.Pos(1))
	assert.Equal(t, 12.5, s.Center(0))
}

func TestBandScale_HalvedRangeHalvesBands(t *testing.T) {
	wide := NewBandScale(0, 800, 7, 0.2)
	narrow := NewBandScale(0, 400, 7, 0.2)

	assert.Equal(t, wide.BandWidth()/2, narrow.BandWidth())
	assert.Equal(t, wide.Step()/2, narrow.Step())
}

func TestBandScale_DegenerateInputs(t *testing.T) {
	s := NewBandScale(0, 100, 0, 0.2)
	assert.Equal(t, 100.0, s.Step(), "zero categories degrade to one band")

	s = NewBandScale(0, 100, 4, 1.5)
	assert.Equal(t, s.Step(), s.BandWidth(), "invalid padding is dropped")
}

func TestLinearScale_MapsAndClamps(t *testing.T) {
	s := NewLinearScale(100, 10, 110)

	assert.Equal(t, 110.0, s.Y(0), "zero sits on the baseline")
	assert.Equal(t, 10.0, s.Y(100), "max reaches the top")
	assert.Equal(t, 60.0, s.Y(50))
	assert.Equal(t, 10.0, s.Y(250), "overshoot clamps to the top")
	assert.Equal(t, 110.0, s.Y(-5), "negatives clamp to the baseline")
}

func TestLinearScale_ZeroCeiling(t *testing.T) {
	s := NewLinearScale(0, 0, 100)
	assert.Equal(t, 1.0, s.Max(), "empty series degrade to a unit domain")
	assert.Equal(t, 100.0, s.Y(0))
}

func TestTickEvery(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1}, {7, 1}, {14, 1},
		{15, 2}, {30, 2},
		{31, 3}, {90, 3}, {365, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TickEvery(tt.n), "n=%d", tt.n)
	}
}
