package export

import "github.com/stitchery/stitchery/pkg/pattern"

const (
	filledMark = '#'
	emptyMark  = '.'
)

// ASCII renders a grid as one text line per row, '#' for worked cells
// and '.' for background. Rows appear top to bottom in grid order with
// no trailing newline.
func ASCII(g *pattern.Grid) string {
	buf := make([]byte, 0, (g.Width+1)*g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < g.Width; x++ {
			if g.Cell(x, y) {
				buf = append(buf, filledMark)
			} else {
				buf = append(buf, emptyMark)
			}
		}
	}
	return string(buf)
}
