package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/stitchery/stitchery/pkg/pattern"
)

// ChartDOT converts a stitch chart to Graphviz DOT. Each stitch becomes
// a node, rows are pinned to the same rank, and edges follow working
// order: along each row, then up into the next. The resulting DOT can
// be rendered with [RenderDiagram].
func ChartDOT(c *pattern.Chart) string {
	var buf bytes.Buffer
	buf.WriteString("digraph chart {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12, fixedsize=true, width=0.5];\n")
	buf.WriteString("  edge [arrowsize=0.5, color=grey];\n")
	buf.WriteString("\n")

	for i, row := range c.Rows {
		fmt.Fprintf(&buf, "  { rank=same; // %s\n", c.Label(i))
		for j, s := range row.Stitches {
			fmt.Fprintf(&buf, "    %s [label=%q%s];\n", stitchNodeID(i, j), string(s), stitchNodeAttrs(s))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for i, row := range c.Rows {
		for j := 1; j < len(row.Stitches); j++ {
			fmt.Fprintf(&buf, "  %s -> %s;\n", stitchNodeID(i, j-1), stitchNodeID(i, j))
		}
		if i > 0 && len(row.Stitches) > 0 && len(c.Rows[i-1].Stitches) > 0 {
			fmt.Fprintf(&buf, "  %s -> %s;\n", stitchNodeID(i-1, 0), stitchNodeID(i, 0))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func stitchNodeID(row, col int) string {
	return fmt.Sprintf("r%ds%d", row, col)
}

func stitchNodeAttrs(s pattern.Stitch) string {
	switch s {
	case pattern.Ch:
		return ", fillcolor=lightgrey"
	case pattern.C4F, pattern.C4B:
		return ", shape=box, width=0.7"
	}
	return ""
}

// RenderDiagram renders a DOT chart to SVG using Graphviz.
func RenderDiagram(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the viewBox is
// anchored at the origin and the pixel size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
