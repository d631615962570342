package export

import (
	"bytes"
	"fmt"

	"github.com/stitchery/stitchery/pkg/pattern"
)

// RenderPDF renders a grid as a minimal single-page PDF. The content
// stream draws one rectangle per cell directly in PDF user space, which
// has its origin at the bottom-left corner of the page, so grid row 0
// (the top row) lands highest on the page and the last row sits at the
// padding offset.
func RenderPDF(g *pattern.Grid, opts ...Option) []byte {
	geo := defaultGeometry()
	for _, opt := range opts {
		opt(&geo)
	}
	frameW, frameH := geo.frame(g.Width, g.Height)

	var content bytes.Buffer
	content.WriteString("0.8 G 0.5 w\n")
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cx := geo.padding + float64(x)*geo.cellSize
			cy := cellOriginY(y, frameH, geo.cellSize, geo.padding)
			if g.Cell(x, y) {
				fmt.Fprintf(&content, "0.1 g %.2f %.2f %.2f %.2f re f\n",
					cx, cy, geo.cellSize, geo.cellSize)
			} else {
				fmt.Fprintf(&content, "%.2f %.2f %.2f %.2f re S\n",
					cx, cy, geo.cellSize, geo.cellSize)
			}
		}
	}

	return assemblePDF(frameW, frameH, content.Bytes())
}

// cellOriginY maps a top-down grid row index to the bottom-left corner
// of its cell in PDF user space.
func cellOriginY(row int, frameHeight, cellSize, padding float64) float64 {
	return frameHeight - (padding + float64(row+1)*cellSize)
}

// assemblePDF wraps a content stream in the minimal document skeleton:
// catalog, page tree, one page, and the stream object, followed by a
// cross-reference table with byte-exact offsets.
func assemblePDF(pageW, pageH float64, content []byte) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Contents 4 0 R >>", pageW, pageH),
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefStart)

	return buf.Bytes()
}
