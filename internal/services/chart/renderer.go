package chart

import (
	"fmt"
	"strings"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/services/aggregate"
)

// Kind selects the chart style.
type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
)

// Renderer draws aggregated series onto a Surface. Rendering is a full
// clear-and-rebuild: the same series always produces the same element list.
type Renderer struct {
	margin  Margin
	padding float64
	// Ceiling overrides max(series.value) as the vertical domain top when >0.
	Ceiling float64
}

// NewRenderer creates a renderer with the given margin. Bars keep 20% of the
// band step as gap.
func NewRenderer(m Margin) *Renderer {
	return &Renderer{margin: m, padding: 0.2}
}

// Render clears the surface and draws the series as chartKind. Empty series
// still draw axes so the view shows an empty state rather than nothing.
func (r *Renderer) Render(s *Surface, series []models.TimePoint, chartKind Kind) {
	s.Reset()

	x0 := r.margin.Left
	x1 := s.Width - r.margin.Right
	yTop := r.margin.Top
	yBottom := s.Height - r.margin.Bottom

	ceiling := r.Ceiling
	if ceiling <= 0 {
		ceiling = aggregate.MaxValue(series)
	}

	xs := NewBandScale(x0, x1, len(series), r.padding)
	ys := NewLinearScale(ceiling, yTop, yBottom)

	r.drawAxes(s, x0, x1, yTop, yBottom, ys)
	r.drawTicks(s, series, xs, yBottom)

	switch chartKind {
	case KindLine:
		r.drawLine(s, series, xs, ys)
	default:
		r.drawBars(s, series, xs, ys, yBottom)
	}
}

func (r *Renderer) drawAxes(s *Surface, x0, x1, yTop, yBottom float64, ys LinearScale) {
	// x axis
	s.Add(Element{Kind: ElemLine, X: x0, Y: yBottom, X2: x1, Y2: yBottom, Class: "axis"})
	// y axis
	s.Add(Element{Kind: ElemLine, X: x0, Y: yTop, X2: x0, Y2: yBottom, Class: "axis"})
	// y labels at 0, mid, max
	for _, frac := range []float64{0, 0.5, 1} {
		v := ys.Max() * frac
		s.Add(Element{
			Kind: ElemText, X: x0 - 6, Y: ys.Y(v),
			Text: trimFloat(v), Class: "y-label",
		})
	}
}

func (r *Renderer) drawTicks(s *Surface, series []models.TimePoint, xs BandScale, yBottom float64) {
	every := TickEvery(len(series))
	for i, p := range series {
		if i%every != 0 {
			continue
		}
		s.Add(Element{
			Kind: ElemText, X: xs.Center(i), Y: yBottom + 16,
			Text: p.Date, Class: "x-label",
		})
	}
}

func (r *Renderer) drawBars(s *Surface, series []models.TimePoint, xs BandScale, ys LinearScale, yBottom float64) {
	for i, p := range series {
		y := ys.Y(p.Value)
		s.Add(Element{
			Kind: ElemRect,
			X:    xs.Pos(i), Y: y,
			W: xs.BandWidth(), H: yBottom - y,
			Class: "bar",
		})
	}
}

func (r *Renderer) drawLine(s *Surface, series []models.TimePoint, xs BandScale, ys LinearScale) {
	if len(series) == 0 {
		return
	}
	var b strings.Builder
	for i, p := range series {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s%.1f %.1f ", cmd, xs.Center(i), ys.Y(p.Value))
	}
	s.Add(Element{Kind: ElemPath, Text: strings.TrimSpace(b.String()), Class: "line"})
	for i, p := range series {
		s.Add(Element{Kind: ElemCircle, X: xs.Center(i), Y: ys.Y(p.Value), R: 2.5, Class: "dot"})
	}
}

func trimFloat(v float64) string {
	out := fmt.Sprintf("%.1f", v)
	out = strings.TrimSuffix(out, ".0")
	return out
}
