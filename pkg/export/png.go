package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/stitchery/stitchery/pkg/pattern"
)

// RenderPNG rasterizes a grid with the same cell geometry as the SVG
// output: dark filled cells on a white ground, light outlines on empty
// cells.
func RenderPNG(g *pattern.Grid, opts ...Option) ([]byte, error) {
	geo := defaultGeometry()
	for _, opt := range opts {
		opt(&geo)
	}
	frameW, frameH := geo.frame(g.Width, g.Height)

	dc := gg.NewContext(int(math.Ceil(frameW)), int(math.Ceil(frameH)))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cx := geo.padding + float64(x)*geo.cellSize
			cy := geo.padding + float64(y)*geo.cellSize
			dc.DrawRectangle(cx, cy, geo.cellSize, geo.cellSize)
			if g.Cell(x, y) {
				dc.SetRGB(0.1, 0.1, 0.1)
				dc.Fill()
			} else {
				dc.SetRGB(0.8, 0.8, 0.8)
				dc.SetLineWidth(0.5)
				dc.Stroke()
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
