package chart

// Margin is the caller-supplied gap between the drawing surface edge and the
// plot area.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultMargin leaves room for axis labels on the left and bottom.
func DefaultMargin() Margin {
	return Margin{Top: 12, Right: 12, Bottom: 28, Left: 44}
}

// BandScale maps n discrete categories onto non-overlapping bands within
// [x0, x1].
type BandScale struct {
	x0, x1  float64
	n       int
	padding float64 // fraction of the step reserved as gap, [0,1)
}

// NewBandScale builds a band scale over [x0, x1] for n categories.
func NewBandScale(x0, x1 float64, n int, padding float64) BandScale {
	if n < 1 {
		n = 1
	}
	if padding < 0 || padding >= 1 {
		padding = 0
	}
	return BandScale{x0: x0, x1: x1, n: n, padding: padding}
}

// Step is the distance between consecutive band starts.
func (s BandScale) Step() float64 {
	return (s.x1 - s.x0) / float64(s.n)
}

// BandWidth is the drawable width of one band after padding.
func (s BandScale) BandWidth() float64 {
	return s.Step() * (1 - s.padding)
}

// Pos returns the left edge of band i.
func (s BandScale) Pos(i int) float64 {
	return s.x0 + float64(i)*s.Step() + s.Step()*s.padding/2
}

// Center returns the midpoint of band i, used for line charts and ticks.
func (s BandScale) Center(i int) float64 {
	return s.Pos(i) + s.BandWidth()/2
}

// LinearScale maps a value domain [0, max] onto the vertical pixel range
// [yBottom, yTop] (screen coordinates grow downward, so yBottom > yTop).
type LinearScale struct {
	max           float64
	yTop, yBottom float64
}

// NewLinearScale builds a vertical scale. A ceiling of 0 (empty series)
// degrades to 1 so the scale stays well-defined.
func NewLinearScale(max, yTop, yBottom float64) LinearScale {
	if max <= 0 {
		max = 1
	}
	return LinearScale{max: max, yTop: yTop, yBottom: yBottom}
}

// Y maps v into the pixel range, clamped so output never exceeds the plot
// area (values are never drawn below the baseline).
func (s LinearScale) Y(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > s.max {
		v = s.max
	}
	return s.yBottom - (v/s.max)*(s.yBottom-s.yTop)
}

// Max returns the scale ceiling.
func (s LinearScale) Max() float64 { return s.max }

// TickEvery decides the label down-sampling stride for n points: every label
// up to 14 points, every 2nd above 14, every 3rd above 30.
func TickEvery(n int) int {
	switch {
	case n > 30:
		return 3
	case n > 14:
		return 2
	default:
		return 1
	}
}
