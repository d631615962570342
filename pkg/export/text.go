package export

import (
	"fmt"
	"strings"

	"github.com/stitchery/stitchery/pkg/pattern"
	"github.com/stitchery/stitchery/pkg/units"
)

// Text renders the written form of a pattern: a header, per-row working
// instructions, and a finished-size footer when a gauge is set. Charts
// print their stitch tokens verbatim; grids are condensed to run-length
// instructions (k2, p2).
func Text(p *pattern.Pattern) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pattern: %s\n", p.Name)
	if p.Gauge != nil {
		g := p.Gauge
		fmt.Fprintf(&b, "Gauge: %.1f sts/%s, %.1f rows/%s, %.1fmm %s\n",
			g.Stitches, g.Unit, g.Rows, g.Unit, g.ToolSize, p.ToolLabel())
	}
	if p.Instructions != "" {
		b.WriteString(p.Instructions)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	switch {
	case p.Chart != nil:
		writeChartRows(&b, p.Chart)
	case p.Grid != nil:
		writeGridRows(&b, p.Grid, p.Craft)
	}

	if p.Gauge != nil {
		sts, rows := rowExtent(p)
		w, h := units.ToPhysical(sts, rows, *p.Gauge)
		fmt.Fprintf(&b, "\nFinished size: %.1f × %.1f %s\n",
			units.Round1(w), units.Round1(h), p.Gauge.Unit)
	}

	return b.String()
}

// rowExtent returns the stitch and row counts that determine physical size.
// Charts use their widest row; foundation chains count as a row of fabric
// only once worked into.
func rowExtent(p *pattern.Pattern) (stitches, rows int) {
	if p.Chart != nil {
		return p.Chart.WidestRow(), len(p.Chart.Rows)
	}
	if p.Grid != nil {
		return p.Grid.Width, p.Grid.Height
	}
	return 0, 0
}

func writeChartRows(b *strings.Builder, c *pattern.Chart) {
	if rep := c.Repeat(); len(rep) > 0 && len(rep) < len(c.Rows[0].Stitches) {
		tokens := make([]string, len(rep))
		for i, s := range rep {
			tokens[i] = string(s)
		}
		fmt.Fprintf(b, "Repeat: %s (%d sts)\n", strings.Join(tokens, ", "), len(rep))
	}
	for i := range c.Rows {
		b.WriteString(c.Line(i))
		b.WriteByte('\n')
	}
}

func writeGridRows(b *strings.Builder, g *pattern.Grid, craft pattern.Craft) {
	if rep := g.HorizontalRepeat(); rep > 0 && rep < g.Width {
		fmt.Fprintf(b, "Horizontal repeat: %d sts\n", rep)
	}
	for y := 0; y < g.Height; y++ {
		fmt.Fprintf(b, "%s: %s\n", gridRowLabel(g, y), gridRowText(g.Row(y), craft))
	}
}

func gridRowLabel(g *pattern.Grid, y int) string {
	n := y + 1
	if g.WorkedInRounds {
		return fmt.Sprintf("Rnd %d", n)
	}
	side := "WS"
	if n%2 == 1 {
		side = "RS"
	}
	return fmt.Sprintf("Row %d (%s)", n, side)
}

// gridRowText condenses one grid row into run-length stitch notation,
// with an "All ..." shorthand for uniform rows.
func gridRowText(row []bool, craft pattern.Craft) string {
	filled, empty := "k", "p"
	allFilled, allEmpty := "All knit", "All purl"
	if craft == pattern.CraftCrochet {
		filled, empty = "sc", "ch"
		allFilled, allEmpty = "All single crochet", "All chains"
	}

	uniform := true
	for _, cell := range row {
		if cell != row[0] {
			uniform = false
			break
		}
	}
	if uniform {
		if row[0] {
			return allFilled
		}
		return allEmpty
	}

	var runs []string
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j] == row[i] {
			j++
		}
		mark := empty
		if row[i] {
			mark = filled
		}
		runs = append(runs, fmt.Sprintf("%s%d", mark, j-i))
		i = j
	}
	return strings.Join(runs, ", ")
}
