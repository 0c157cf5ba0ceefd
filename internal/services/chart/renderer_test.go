package chart

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendMatrix/internal/domain/models"
)

func weekSeries() []models.TimePoint {
	out := make([]models.TimePoint, 7)
	for i := range out {
		out[i] = models.TimePoint{
			Date:  fmt.Sprintf("2025-06-0%d", i+1),
			Value: float64((i * 13) % 40),
		}
	}
	return out
}

func TestRender_BarCounts(t *testing.T) {
	s := NewSurface(800, 320)
	r := NewRenderer(DefaultMargin())

	r.Render(s, weekSeries(), KindBar)

	assert.Equal(t, 7, s.Count(ElemRect), "one bar per bucket")
	assert.Equal(t, 2, s.Count(ElemLine), "two axis lines")
	// 3 y-axis labels plus one x tick per point at 7 points.
	assert.Equal(t, 10, s.Count(ElemText))
	assert.Equal(t, 0, s.Count(ElemPath))
}

func TestRender_LineCounts(t *testing.T) {
	s := NewSurface(800, 320)
	r := NewRenderer(DefaultMargin())

	r.Render(s, weekSeries(), KindLine)

	assert.Equal(t, 1, s.Count(ElemPath), "single polyline")
	assert.Equal(t, 7, s.Count(ElemCircle), "one dot per bucket")
	assert.Equal(t, 0, s.Count(ElemRect))
}

func TestRender_Idempotent(t *testing.T) {
	s := NewSurface(800, 320)
	r := NewRenderer(DefaultMargin())
	series := weekSeries()

	r.Render(s, series, KindBar)
	first := append([]Element(nil), s.Elements()...)

	// Repeated renders must not accumulate elements or change output.
	r.Render(s, series, KindBar)
	r.Render(s, series, KindBar)

	require.Len(t, s.Elements(), len(first))
	assert.Equal(t, first, s.Elements())
}

func TestRender_SwitchingKindsLeavesNoResidue(t *testing.T) {
	s := NewSurface(800, 320)
	r := NewRenderer(DefaultMargin())
	series := weekSeries()

	r.Render(s, series, KindLine)
	r.Render(s, series, KindBar)

	assert.Equal(t, 0, s.Count(ElemPath), "line elements cleared by bar render")
	assert.Equal(t, 0, s.Count(ElemCircle))
	assert.Equal(t, 7, s.Count(ElemRect))
}

func TestRender_ResizeRedrawsNarrowerBars(t *testing.T) {
	m := DefaultMargin()
	r := NewRenderer(m)
	series := weekSeries()

	s := NewSurface(800, 320)
	r.Render(s, series, KindBar)
	wideWidth := firstRect(t, s).W

	s.Resize(400, 320)
	require.Empty(t, s.Elements(), "resize clears the surface")

	r.Render(s, series, KindBar)
	narrowWidth := firstRect(t, s).W

	wantWide := NewBandScale(m.Left, 800-m.Right, 7, 0.2).BandWidth()
	wantNarrow := NewBandScale(m.Left, 400-m.Right, 7, 0.2).BandWidth()
	assert.InDelta(t, wantWide, wideWidth, 1e-9)
	assert.InDelta(t, wantNarrow, narrowWidth, 1e-9)
	assert.Less(t, narrowWidth, wideWidth)
}

func TestRender_TickThinning(t *testing.T) {
	m := DefaultMargin()
	r := NewRenderer(m)

	long := make([]models.TimePoint, 31)
	for i := range long {
		long[i] = models.TimePoint{Date: fmt.Sprintf("d%02d", i), Value: 1}
	}

	s := NewSurface(800, 320)
	r.Render(s, long, KindBar)

	// ceil(31/3) = 11 x labels plus the 3 y labels.
	assert.Equal(t, 11+3, s.Count(ElemText))
}

func TestRender_EmptySeriesStillDrawsAxes(t *testing.T) {
	s := NewSurface(800, 320)
	r := NewRenderer(DefaultMargin())

	r.Render(s, nil, KindBar)

	assert.Equal(t, 2, s.Count(ElemLine))
	assert.Equal(t, 3, s.Count(ElemText))
	assert.Equal(t, 0, s.Count(ElemRect))
}

func TestWriteSVG(t *testing.T) {
	s := NewSurface(800, 320)
	r := NewRenderer(DefaultMargin())
	r.Render(s, weekSeries(), KindBar)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, s))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg"), "document starts with the svg element")
	assert.Contains(t, out, `width="800"`)
	assert.Contains(t, out, `height="320"`)
	assert.Equal(t, 7, strings.Count(out, "<rect"))
	assert.Contains(t, out, "</svg>")

	var again bytes.Buffer
	require.NoError(t, WriteSVG(&again, s))
	assert.Equal(t, out, again.String(), "serialization is deterministic")
}

func firstRect(t *testing.T, s *Surface) Element {
	t.Helper()
	for _, e := range s.Elements() {
		if e.Kind == ElemRect {
			return e
		}
	}
	t.Fatal("no rect on surface")
	return Element{}
}
