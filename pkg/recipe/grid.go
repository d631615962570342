package recipe

import (
	"fmt"

	"github.com/stitchery/stitchery/pkg/pattern"
)

// Grid fill rules. Each rule is a total function over (x, y) in
// [0,W)×[0,H); Grid.Fill applies it uniformly with no per-cell special
// cases outside the rule.

// checkerboardRule fills cells where x+y is even. Period 2 in both axes.
func checkerboardRule(x, y int) bool {
	return (x+y)%2 == 0
}

// stripeRule fills every other row; x-independent.
func stripeRule(_, y int) bool {
	return y%2 == 0
}

// garterRule fills every cell (knit on both sides).
func garterRule(_, _ int) bool {
	return true
}

// ribRule alternates n-wide column blocks: a strict two-state cycle of
// knit and purl blocks, period 2n in x. This is the block-alternation
// interpretation of ribbing (k,k,p,p for n=2); n is a block width, not the
// length of an n-state cycle.
func ribRule(n int) func(x, y int) bool {
	return func(x, _ int) bool {
		return (x/n)%2 == 0
	}
}

// mossRule alternates n×n blocks in both axes.
func mossRule(n int) func(x, y int) bool {
	return func(x, y int) bool {
		return (x/n+y/n)%2 == 0
	}
}

// grannyRule fills concentric square rings around the grid center. The
// layer index is the Chebyshev distance from the center cell; layers within
// the round count alternate filled/empty, everything beyond stays empty.
func grannyRule(width, height, rounds int) func(x, y int) bool {
	cx, cy := (width-1)/2, (height-1)/2
	return func(x, y int) bool {
		layer := maxInt(absInt(x-cx), absInt(y-cy))
		return layer < rounds && layer%2 == 0
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// fillGrid constructs a W×H grid, fills it with rule, and tags it with the
// rule name.
func fillGrid(width, height int, name string, rule func(x, y int) bool) (*pattern.Grid, error) {
	g, err := pattern.NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	g.Fill(rule)
	g.Rule = name
	return g, nil
}

func garterGrid(p Params) (*pattern.Grid, error) {
	return fillGrid(p.Width, p.Height, "garter", garterRule)
}

func stockinetteGrid(p Params) (*pattern.Grid, error) {
	return fillGrid(p.Width, p.Height, "stockinette", stripeRule)
}

func seedGrid(p Params) (*pattern.Grid, error) {
	return fillGrid(p.Width, p.Height, "seed", checkerboardRule)
}

func ribGrid(p Params) (*pattern.Grid, error) {
	if p.RibWidth < 1 {
		return nil, fmt.Errorf("rib width %d: %w", p.RibWidth, pattern.ErrInvalidDimension)
	}
	return fillGrid(p.Width, p.Height, "rib", ribRule(p.RibWidth))
}

func mossGrid(p Params) (*pattern.Grid, error) {
	if p.BlockSize < 1 {
		return nil, fmt.Errorf("moss block size %d: %w", p.BlockSize, pattern.ErrInvalidDimension)
	}
	return fillGrid(p.Width, p.Height, "moss", mossRule(p.BlockSize))
}

// cableGrid is a rib-like base grid carrying crossing metadata. The
// crossings cadence (front at rows ≡ 0, back at rows ≡ 4, modulo 8) feeds
// chart-token generation only; the boolean cells ignore it.
func cableGrid(p Params) (*pattern.Grid, error) {
	if p.CableWidth < 1 {
		return nil, fmt.Errorf("cable width %d: %w", p.CableWidth, pattern.ErrInvalidDimension)
	}
	g, err := fillGrid(p.Width, p.Height, "cable", ribRule(p.CableWidth))
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.Height; y++ {
		switch y % 8 {
		case 0:
			g.Crossings = append(g.Crossings, pattern.Crossing{Row: y, Position: p.CableWidth, Direction: pattern.CrossFront})
		case 4:
			g.Crossings = append(g.Crossings, pattern.Crossing{Row: y, Position: p.CableWidth, Direction: pattern.CrossBack})
		}
	}
	return g, nil
}

func grannyGrid(p Params) (*pattern.Grid, error) {
	if p.Rounds < 1 {
		return nil, fmt.Errorf("rounds %d: %w", p.Rounds, pattern.ErrInvalidDimension)
	}
	g, err := fillGrid(p.Width, p.Height, "granny", grannyRule(p.Width, p.Height, p.Rounds))
	if err != nil {
		return nil, err
	}
	g.WorkedInRounds = true
	return g, nil
}
