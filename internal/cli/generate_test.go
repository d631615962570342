package cli

import (
	"testing"

	"github.com/stitchery/stitchery/pkg/units"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cfgFormat string
		want      []string
	}{
		{"explicit single", "svg", "", []string{"svg"}},
		{"explicit multiple", "ascii,svg,pdf", "", []string{"ascii", "svg", "pdf"}},
		{"empty falls back to config", "", "png", []string{"png"}},
		{"empty with no config", "", "", []string{"ascii"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CLI{Config: Config{Format: tt.cfgFormat}}
			got := c.parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		recipe string
		format string
		want   string
	}{
		{"explicit output wins", "chart.svg", "garter", "svg", "chart.svg"},
		{"ascii defaults to stdout", "", "garter", "ascii", ""},
		{"text defaults to stdout", "", "rib", "text", ""},
		{"dot defaults to stdout", "", "granny-chart", "dot", ""},
		{"svg derives a file name", "", "garter", "svg", "garter.svg"},
		{"pdf derives a file name", "", "cable", "pdf", "cable.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.recipe, tt.format); got != tt.want {
				t.Errorf("outputPath(%q, %q, %q) = %q, want %q",
					tt.output, tt.recipe, tt.format, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		recipe string
		want   string
	}{
		{"empty uses recipe", "", "garter", "garter"},
		{"format extension stripped", "swatch.svg", "garter", "swatch"},
		{"unknown extension kept", "swatch.out", "garter", "swatch.out"},
		{"plain base kept", "my-swatch", "garter", "my-swatch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.recipe); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.recipe, got, tt.want)
			}
		})
	}
}

func TestResolveGauge(t *testing.T) {
	c := &CLI{Config: Config{Gauges: map[string]GaugePreset{
		"worsted": {Stitches: 1.8, Rows: 2.4, Tool: 4.5, Unit: "cm"},
		"broken":  {Stitches: -1, Rows: 2, Tool: 4},
	}}}

	t.Run("empty means no gauge", func(t *testing.T) {
		g, err := c.resolveGauge("", "cm")
		if err != nil || g != nil {
			t.Errorf("resolveGauge(\"\") = %v, %v", g, err)
		}
	})

	t.Run("preset lookup", func(t *testing.T) {
		g, err := c.resolveGauge("worsted", "inch")
		if err != nil {
			t.Fatal(err)
		}
		// The preset carries its own unit; --unit only applies inline.
		if g.Stitches != 1.8 || g.Unit != units.Centimeter {
			t.Errorf("gauge = %+v", g)
		}
	})

	t.Run("invalid preset", func(t *testing.T) {
		if _, err := c.resolveGauge("broken", "cm"); err == nil {
			t.Error("expected error for invalid preset")
		}
	})

	t.Run("inline triple", func(t *testing.T) {
		g, err := c.resolveGauge("2.0, 3.0, 5.5", "inch")
		if err != nil {
			t.Fatal(err)
		}
		if g.Stitches != 2 || g.Rows != 3 || g.ToolSize != 5.5 || g.Unit != units.Inch {
			t.Errorf("gauge = %+v", g)
		}
	})

	t.Run("wrong arity", func(t *testing.T) {
		if _, err := c.resolveGauge("2,3", "cm"); err == nil {
			t.Error("expected error for two-part gauge")
		}
	})

	t.Run("non-numeric", func(t *testing.T) {
		if _, err := c.resolveGauge("a,b,c", "cm"); err == nil {
			t.Error("expected error for non-numeric gauge")
		}
	})

	t.Run("invalid unit", func(t *testing.T) {
		if _, err := c.resolveGauge("2,3,4", "furlong"); err == nil {
			t.Error("expected error for unrecognized unit")
		}
	})

	t.Run("empty unit defaults", func(t *testing.T) {
		g, err := c.resolveGauge("2,3,4", "")
		if err != nil {
			t.Fatal(err)
		}
		if g.Unit != units.Centimeter {
			t.Errorf("empty unit should default to cm, got %q", g.Unit)
		}
	})
}
