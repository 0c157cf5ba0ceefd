package chart

// ElementKind tags a visual primitive on the surface.
type ElementKind string

const (
	ElemRect   ElementKind = "rect"
	ElemLine   ElementKind = "line"
	ElemPath   ElementKind = "path"
	ElemText   ElementKind = "text"
	ElemCircle ElementKind = "circle"
)

// Element is one drawn primitive. Coordinates are in surface pixels.
type Element struct {
	Kind   ElementKind
	X, Y   float64
	X2, Y2 float64 // lines
	W, H   float64 // rects
	R      float64 // circles
	Text   string  // text labels and path data
	Class  string
}

// Surface is the drawing container a renderer mutates. A render pass fully
// clears the element list before rebuilding, so repeated renders of the same
// series leave the surface in an identical state.
type Surface struct {
	Width  float64
	Height float64
	elems  []Element
}

// NewSurface creates an empty drawing surface of the given pixel size.
func NewSurface(width, height float64) *Surface {
	return &Surface{Width: width, Height: height}
}

// Reset discards all drawn elements. Mandatory before every redraw; stale
// elements from a previous pass must never leak into the next one.
func (s *Surface) Reset() {
	s.elems = s.elems[:0]
}

// Resize changes the surface dimensions. Contents are cleared; the caller
// re-renders with existing data (a resize never triggers a re-fetch).
func (s *Surface) Resize(width, height float64) {
	s.Width = width
	s.Height = height
	s.Reset()
}

// Add appends a primitive.
func (s *Surface) Add(e Element) {
	s.elems = append(s.elems, e)
}

// Elements returns the drawn primitives in draw order.
func (s *Surface) Elements() []Element {
	return s.elems
}

// Count returns how many primitives of the given kind are on the surface.
func (s *Surface) Count(kind ElementKind) int {
	n := 0
	for _, e := range s.elems {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
