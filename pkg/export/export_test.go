package export

import (
	"errors"
	"strings"
	"testing"

	"github.com/stitchery/stitchery/pkg/pattern"
)

func gridPattern(t *testing.T, width, height int, rule func(x, y int) bool) *pattern.Pattern {
	t.Helper()
	g, err := pattern.NewGrid(width, height)
	if err != nil {
		t.Fatal(err)
	}
	g.Fill(rule)
	return pattern.NewGridPattern("Test Pattern", pattern.CraftKnit, g)
}

func chartPattern(t *testing.T) *pattern.Pattern {
	t.Helper()
	c := pattern.NewChart(pattern.CraftKnit)
	c.Append(pattern.K, pattern.K)
	c.Append(pattern.P, pattern.P)
	return pattern.NewChartPattern("Test Chart", pattern.CraftKnit, c)
}

func TestValid(t *testing.T) {
	for _, f := range Formats() {
		if !Valid(f) {
			t.Errorf("Valid(%q) = false", f)
		}
	}
	if Valid("gif") {
		t.Error("Valid(gif) = true")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	p := gridPattern(t, 2, 2, func(_, _ int) bool { return true })
	if _, err := Export(p, "gif"); err == nil {
		t.Error("Export with unknown format should fail")
	}
}

func TestExportRepresentationMismatch(t *testing.T) {
	grid := gridPattern(t, 2, 2, func(_, _ int) bool { return true })
	chart := chartPattern(t)

	// Image formats draw the grid; a chart-only pattern cannot satisfy them.
	for _, f := range []Format{FormatASCII, FormatSVG, FormatPNG, FormatPDF} {
		t.Run("chart through "+string(f), func(t *testing.T) {
			_, err := Export(chart, f)
			if !errors.Is(err, ErrUnsupportedPatternType) {
				t.Errorf("error = %v, want ErrUnsupportedPatternType", err)
			}
			if err != nil && !strings.Contains(err.Error(), string(f)) {
				t.Errorf("error %q should name the format", err)
			}
		})
	}

	// Graph formats lay out the chart; a grid-only pattern cannot satisfy them.
	for _, f := range []Format{FormatDOT, FormatDiagram} {
		t.Run("grid through "+string(f), func(t *testing.T) {
			if _, err := Export(grid, f); !errors.Is(err, ErrUnsupportedPatternType) {
				t.Errorf("error = %v, want ErrUnsupportedPatternType", err)
			}
		})
	}

	// Text works from either representation.
	if _, err := Export(grid, FormatText); err != nil {
		t.Errorf("text export of grid failed: %v", err)
	}
	if _, err := Export(chart, FormatText); err != nil {
		t.Errorf("text export of chart failed: %v", err)
	}
}

func TestASCII(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		rule          func(x, y int) bool
		want          string
	}{
		{
			name:  "all filled",
			width: 2, height: 2,
			rule: func(_, _ int) bool { return true },
			want: "##\n##",
		},
		{
			name:  "all empty",
			width: 3, height: 1,
			rule: func(_, _ int) bool { return false },
			want: "...",
		},
		{
			name:  "checkerboard",
			width: 4, height: 2,
			rule: func(x, y int) bool { return (x+y)%2 == 0 },
			want: "#.#.\n.#.#",
		},
		{
			name:  "stripes",
			width: 3, height: 3,
			rule: func(_, y int) bool { return y%2 == 0 },
			want: "###\n...\n###",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := gridPattern(t, tt.width, tt.height, tt.rule)
			if got := ASCII(p.Grid); got != tt.want {
				t.Errorf("ASCII() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportASCIIDispatch(t *testing.T) {
	p := gridPattern(t, 2, 2, func(_, _ int) bool { return true })
	data, err := Export(p, FormatASCII)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "##\n##" {
		t.Errorf("Export(ascii) = %q, want %q", data, "##\n##")
	}
}
