// Package export renders patterns into their output formats.
//
// Text formats (ascii, text) work from whichever representation the
// pattern carries. Image formats (svg, png, pdf) draw the boolean grid,
// while dot and diagram lay out the stitch chart as a graph. Asking a
// format for a representation the pattern does not have fails with
// [ErrUnsupportedPatternType].
package export

import (
	"errors"
	"fmt"

	"github.com/stitchery/stitchery/pkg/pattern"
)

// ErrUnsupportedPatternType is returned when a format requires a
// representation (grid or chart) the pattern does not carry.
var ErrUnsupportedPatternType = errors.New("pattern lacks the representation this format needs")

// Format identifies an output encoding.
type Format string

const (
	FormatASCII   Format = "ascii"
	FormatText    Format = "text"
	FormatSVG     Format = "svg"
	FormatPNG     Format = "png"
	FormatPDF     Format = "pdf"
	FormatDOT     Format = "dot"
	FormatDiagram Format = "diagram"
)

var validFormats = map[Format]bool{
	FormatASCII:   true,
	FormatText:    true,
	FormatSVG:     true,
	FormatPNG:     true,
	FormatPDF:     true,
	FormatDOT:     true,
	FormatDiagram: true,
}

// Valid reports whether f names a known format.
func Valid(f Format) bool { return validFormats[f] }

// Formats lists all known formats in display order.
func Formats() []Format {
	return []Format{FormatASCII, FormatText, FormatSVG, FormatPNG, FormatPDF, FormatDOT, FormatDiagram}
}

// Default cell geometry for the image formats, in output units
// (pixels for PNG, user-space points for SVG and PDF).
const (
	DefaultCellSize = 12.0
	DefaultPadding  = 4.0
)

type geometry struct {
	cellSize float64
	padding  float64
}

func defaultGeometry() geometry {
	return geometry{cellSize: DefaultCellSize, padding: DefaultPadding}
}

func (g geometry) frame(width, height int) (w, h float64) {
	w = float64(width)*g.cellSize + 2*g.padding
	h = float64(height)*g.cellSize + 2*g.padding
	return w, h
}

// Option configures the cell geometry of the image formats.
// Text formats ignore geometry options.
type Option func(*geometry)

// WithCellSize sets the side length of one grid cell.
func WithCellSize(s float64) Option { return func(g *geometry) { g.cellSize = s } }

// WithPadding sets the margin around the grid.
func WithPadding(p float64) Option { return func(g *geometry) { g.padding = p } }

// Export renders p in the given format.
func Export(p *pattern.Pattern, f Format, opts ...Option) ([]byte, error) {
	if !Valid(f) {
		return nil, fmt.Errorf("unknown format %q", f)
	}

	switch f {
	case FormatASCII:
		g, err := requireGrid(p, f)
		if err != nil {
			return nil, err
		}
		return []byte(ASCII(g)), nil

	case FormatText:
		if p == nil || (p.Grid == nil && p.Chart == nil) {
			return nil, fmt.Errorf("%s: %w", f, ErrUnsupportedPatternType)
		}
		return []byte(Text(p)), nil

	case FormatSVG:
		g, err := requireGrid(p, f)
		if err != nil {
			return nil, err
		}
		return RenderSVG(g, opts...), nil

	case FormatPNG:
		g, err := requireGrid(p, f)
		if err != nil {
			return nil, err
		}
		return RenderPNG(g, opts...)

	case FormatPDF:
		g, err := requireGrid(p, f)
		if err != nil {
			return nil, err
		}
		return RenderPDF(g, opts...), nil

	case FormatDOT:
		c, err := requireChart(p, f)
		if err != nil {
			return nil, err
		}
		return []byte(ChartDOT(c)), nil

	case FormatDiagram:
		c, err := requireChart(p, f)
		if err != nil {
			return nil, err
		}
		return RenderDiagram(ChartDOT(c))
	}

	return nil, fmt.Errorf("unknown format %q", f)
}

func requireGrid(p *pattern.Pattern, f Format) (*pattern.Grid, error) {
	if p == nil || p.Grid == nil {
		return nil, fmt.Errorf("%s: %w", f, ErrUnsupportedPatternType)
	}
	return p.Grid, nil
}

func requireChart(p *pattern.Pattern, f Format) (*pattern.Chart, error) {
	if p == nil || p.Chart == nil {
		return nil, fmt.Errorf("%s: %w", f, ErrUnsupportedPatternType)
	}
	return p.Chart, nil
}
