// Package pattern defines the stitch pattern data model: boolean grids,
// semantic stitch charts, and the Pattern envelope that exporters consume.
//
// A [Grid] is a fixed-size rectangular matrix of filled/empty cells, the
// representation behind ASCII art and image exports. A [Chart] is an ordered
// sequence of rows (or rounds) of craft-specific stitch tokens, the
// representation behind written instructions and stitch diagrams. A
// [Pattern] wraps exactly one of the two together with a name, craft, and
// optional gauge.
//
// Patterns follow a write-then-read lifecycle: a generator fills the grid or
// chart once, gauge is optionally attached, and from then on the pattern is
// treated as read-only by every exporter. Nothing enforces a freeze, but all
// exporters rely on it, which also makes concurrent exports of the same
// pattern safe.
package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when a grid or chart is requested with a
// non-positive width, height, or round count.
var ErrInvalidDimension = errors.New("dimensions must be positive")

// CrossDirection is the direction of a cable crossing.
type CrossDirection int

const (
	// CrossFront holds the cable needle in front of the work.
	CrossFront CrossDirection = iota
	// CrossBack holds the cable needle behind the work.
	CrossBack
)

// Crossing records a cable crossing at a grid position. Crossings are
// metadata for chart-token generation; they do not affect the boolean cells.
type Crossing struct {
	Row       int
	Position  int
	Direction CrossDirection
}

// Grid is a W×H matrix of filled/empty cells. Every row has exactly Width
// cells and there are exactly Height rows; both are at least 1.
type Grid struct {
	Width  int
	Height int

	// Rule names the fill rule that generated this grid (e.g. "garter").
	// Empty for directly constructed grids.
	Rule string

	// WorkedInRounds marks grids representing circular motifs (e.g. granny
	// squares); text export labels their rows "Rnd" instead of "Row".
	WorkedInRounds bool

	// Crossings records cable crossing positions, if any.
	Crossings []Crossing

	cells [][]bool
}

// NewGrid constructs an all-empty grid. Width and height must be positive.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("grid %dx%d: %w", width, height, ErrInvalidDimension)
	}
	cells := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
	}
	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// Cell reports whether the cell at (x, y) is filled. Out-of-range
// coordinates read as empty.
func (g *Grid) Cell(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}
	return g.cells[y][x]
}

// Set fills or clears the cell at (x, y). Out-of-range coordinates are
// ignored.
func (g *Grid) Set(x, y int, filled bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.cells[y][x] = filled
}

// Fill applies rule uniformly to every cell, overwriting previous contents.
// Filling twice with the same rule yields an identical grid.
func (g *Grid) Fill(rule func(x, y int) bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.cells[y][x] = rule(x, y)
		}
	}
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []bool {
	row := make([]bool, g.Width)
	copy(row, g.cells[y])
	return row
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// HorizontalRepeat returns the smallest period p such that the top row
// repeats every p cells. A return value equal to Width means no shorter
// repeat exists.
func (g *Grid) HorizontalRepeat() int {
	row := g.cells[0]
	for p := 1; p <= len(row)/2; p++ {
		if len(row)%p != 0 {
			continue
		}
		ok := true
		for i := range row {
			if row[i] != row[i%p] {
				ok = false
				break
			}
		}
		if ok {
			return p
		}
	}
	return g.Width
}
