package pattern

import "github.com/stitchery/stitchery/pkg/units"

// Pattern is the envelope around a generated grid or chart. Exactly one of
// Grid and Chart is non-nil; exporters dispatch on which.
//
// A Pattern owns its grid/chart exclusively. After generation and optional
// gauging it is read-only for all export calls.
type Pattern struct {
	// Name is the display name, e.g. "Garter Pattern".
	Name  string
	Craft Craft

	// Instructions is the recipe's natural-language working summary,
	// e.g. "Knit every row." Used by the text exporter.
	Instructions string

	Grid  *Grid
	Chart *Chart

	// Gauge, when set, enables physical-size output in exporters.
	Gauge *units.Gauge
}

// NewGridPattern wraps a grid in a pattern envelope.
func NewGridPattern(name string, craft Craft, g *Grid) *Pattern {
	return &Pattern{Name: name, Craft: craft, Grid: g}
}

// NewChartPattern wraps a chart in a pattern envelope.
func NewChartPattern(name string, craft Craft, c *Chart) *Pattern {
	return &Pattern{Name: name, Craft: craft, Chart: c}
}

// SetGauge attaches gauge information to the pattern.
func (p *Pattern) SetGauge(g units.Gauge) {
	p.Gauge = &g
}

// IsGrid reports whether the pattern holds a grid representation.
func (p *Pattern) IsGrid() bool { return p.Grid != nil }

// IsChart reports whether the pattern holds a chart representation.
func (p *Pattern) IsChart() bool { return p.Chart != nil }

// ToolLabel names the tool for the pattern's craft ("needles" or "hook").
func (p *Pattern) ToolLabel() string {
	if p.Craft == CraftCrochet {
		return "hook"
	}
	return "needles"
}
