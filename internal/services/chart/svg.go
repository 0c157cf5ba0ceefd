package chart

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const svgStyle = `.axis{stroke:#3a3f4b;stroke-width:1}` +
	`.bar{fill:#5b8def}` +
	`.line{fill:none;stroke:#5b8def;stroke-width:2}` +
	`.dot{fill:#5b8def}` +
	`.x-label{font:10px sans-serif;fill:#9aa0ab;text-anchor:middle}` +
	`.y-label{font:10px sans-serif;fill:#9aa0ab;text-anchor:end}`

// WriteSVG serializes the surface as a standalone SVG document. Output is a
// pure function of the element list, so identical renders produce identical
// bytes.
func WriteSVG(w io.Writer, s *Surface) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`,
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&b, `<style>%s</style>`, svgStyle)

	for _, e := range s.Elements() {
		switch e.Kind {
		case ElemRect:
			fmt.Fprintf(&b, `<rect class=%q x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`,
				e.Class, e.X, e.Y, e.W, e.H)
		case ElemLine:
			fmt.Fprintf(&b, `<line class=%q x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`,
				e.Class, e.X, e.Y, e.X2, e.Y2)
		case ElemPath:
			fmt.Fprintf(&b, `<path class=%q d=%q/>`, e.Class, e.Text)
		case ElemCircle:
			fmt.Fprintf(&b, `<circle class=%q cx="%.1f" cy="%.1f" r="%.1f"/>`,
				e.Class, e.X, e.Y, e.R)
		case ElemText:
			var esc strings.Builder
			if err := xml.EscapeText(&esc, []byte(e.Text)); err != nil {
				return fmt.Errorf("escape label: %w", err)
			}
			fmt.Fprintf(&b, `<text class=%q x="%.1f" y="%.1f">%s</text>`,
				e.Class, e.X, e.Y, esc.String())
		}
	}

	b.WriteString(`</svg>`)
	_, err := io.WriteString(w, b.String())
	return err
}
