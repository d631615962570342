package export

import (
	"bytes"
	"fmt"

	"github.com/stitchery/stitchery/pkg/pattern"
)

const (
	svgFillColor   = "#1a1a1a"
	svgEmptyColor  = "#ffffff"
	svgStrokeColor = "#cccccc"
)

// RenderSVG renders a grid as an SVG document, one rect per cell.
// Worked cells are filled dark; background cells are white with a light
// outline so the chart grid stays visible.
func RenderSVG(g *pattern.Grid, opts ...Option) []byte {
	geo := defaultGeometry()
	for _, opt := range opts {
		opt(&geo)
	}
	frameW, frameH := geo.frame(g.Width, g.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frameW, frameH, frameW, frameH)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		frameW, frameH, svgEmptyColor)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cx := geo.padding + float64(x)*geo.cellSize
			cy := geo.padding + float64(y)*geo.cellSize
			if g.Cell(x, y) {
				fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
					cx, cy, geo.cellSize, geo.cellSize, svgFillColor)
			} else {
				fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="0.5"/>`+"\n",
					cx, cy, geo.cellSize, geo.cellSize, svgEmptyColor, svgStrokeColor)
			}
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
