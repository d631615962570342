package recipe

import (
	"fmt"

	"github.com/stitchery/stitchery/pkg/pattern"
)

// Chart token generators. Knitting charts emit one token per cell from the
// same coordinate rules as the grids; crochet charts emit per-row sequences
// whose length may grow per round.

// tokenCycle emits tokens from a repeating table keyed by position modulo
// the table length, with an optional per-row phase shift. This is the
// table-driven customization surface for periodic knit recipes.
func tokenCycle(table []pattern.Stitch, shift func(y int) int) func(x, y int) pattern.Stitch {
	return func(x, y int) pattern.Stitch {
		i := x
		if shift != nil {
			i += shift(y)
		}
		return table[i%len(table)]
	}
}

// knitChart fills a width×height knitting chart by applying rule to every
// cell. All the periodic knit recipes share this loop; the rule table is
// what varies per recipe.
func knitChart(width, height int, rule func(x, y int) pattern.Stitch) (*pattern.Chart, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	c := pattern.NewChart(pattern.CraftKnit)
	for y := 0; y < height; y++ {
		row := make([]pattern.Stitch, width)
		for x := 0; x < width; x++ {
			row[x] = rule(x, y)
		}
		c.Append(row...)
	}
	return c, nil
}

func checkDims(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("chart %dx%d: %w", width, height, pattern.ErrInvalidDimension)
	}
	return nil
}

// garterChart: knit every stitch on every row.
func garterChart(p Params) (*pattern.Chart, error) {
	return knitChart(p.Width, p.Height, func(_, _ int) pattern.Stitch {
		return pattern.K
	})
}

// mirrorWS applies rule directly on RS rows and token-mirrored on WS rows:
// the read-both-sides policy, where a WS purl shows as a knit on the front.
func mirrorWS(rule func(x, y int) pattern.Stitch) func(x, y int) pattern.Stitch {
	return func(x, y int) pattern.Stitch {
		s := rule(x, y)
		if y%2 == 1 {
			return s.Mirror()
		}
		return s
	}
}

// stockinetteChart: all knit as seen from the right side, so WS rows
// mirror to all purl.
func stockinetteChart(p Params) (*pattern.Chart, error) {
	return knitChart(p.Width, p.Height, mirrorWS(func(_, _ int) pattern.Stitch {
		return pattern.K
	}))
}

// ribChart: n-wide knit and purl blocks, same rule on both sides.
func ribChart(p Params) (*pattern.Chart, error) {
	if p.RibWidth < 1 {
		return nil, fmt.Errorf("rib width %d: %w", p.RibWidth, pattern.ErrInvalidDimension)
	}
	table := make([]pattern.Stitch, 0, 2*p.RibWidth)
	for i := 0; i < p.RibWidth; i++ {
		table = append(table, pattern.K)
	}
	for i := 0; i < p.RibWidth; i++ {
		table = append(table, pattern.P)
	}
	return knitChart(p.Width, p.Height, tokenCycle(table, nil))
}

// seedChart: k/p alternation shifted one stitch per row.
func seedChart(p Params) (*pattern.Chart, error) {
	return knitChart(p.Width, p.Height, tokenCycle([]pattern.Stitch{pattern.K, pattern.P}, func(y int) int {
		return y
	}))
}

// mossChart: n×n block alternation of knit and purl.
func mossChart(p Params) (*pattern.Chart, error) {
	if p.BlockSize < 1 {
		return nil, fmt.Errorf("moss block size %d: %w", p.BlockSize, pattern.ErrInvalidDimension)
	}
	n := p.BlockSize
	return knitChart(p.Width, p.Height, func(x, y int) pattern.Stitch {
		if (x/n+y/n)%2 == 0 {
			return pattern.K
		}
		return pattern.P
	})
}

// cableChart: a cable panel between reverse-stockinette margins. The panel
// crosses front at rows ≡ 0 and back at rows ≡ 4, modulo 8; all other
// panel rows knit plain.
func cableChart(p Params) (*pattern.Chart, error) {
	if p.CableWidth < 1 {
		return nil, fmt.Errorf("cable width %d: %w", p.CableWidth, pattern.ErrInvalidDimension)
	}
	cw := p.CableWidth
	return knitChart(p.Width, p.Height, func(x, y int) pattern.Stitch {
		if x < cw || x >= 2*cw {
			return pattern.P
		}
		switch y % 8 {
		case 0:
			return pattern.C4F
		case 4:
			return pattern.C4B
		default:
			return pattern.K
		}
	})
}

// Granny chart growth parameters: round r (r ≥ 2) holds
// grannyBaseCount + grannyGrowthRate×(r-1) positions, every fourth of
// which opens a corner chain space.
const (
	grannyBaseCount  = 4
	grannyGrowthRate = 3
)

// grannyChart builds a granny square worked in rounds. Round 1 is the
// fixed center (ch 3, 3 dc, ch 2); later rounds grow per the recipe's
// growth parameters.
func grannyChart(p Params) (*pattern.Chart, error) {
	if p.Rounds < 1 {
		return nil, fmt.Errorf("rounds %d: %w", p.Rounds, pattern.ErrInvalidDimension)
	}
	c := pattern.NewChart(pattern.CraftCrochet)
	c.WorkedInRounds = true

	first := []pattern.Stitch{
		pattern.Ch, pattern.Ch, pattern.Ch,
		pattern.Dc, pattern.Dc, pattern.Dc,
		pattern.Ch, pattern.Ch,
	}
	c.Append(first...)

	for r := 2; r <= p.Rounds; r++ {
		var round []pattern.Stitch
		positions := grannyBaseCount + grannyGrowthRate*(r-1)
		for i := 0; i < positions; i++ {
			if i%4 == 0 {
				round = append(round, pattern.Ch, pattern.Ch)
			} else {
				round = append(round, pattern.Dc)
			}
		}
		c.Append(round...)
	}
	return c, nil
}

// singleCrochetChart: a foundation chain then constant-width rows of
// single crochet, each led by a turning chain.
func singleCrochetChart(p Params) (*pattern.Chart, error) {
	if err := checkDims(p.Width, p.Height); err != nil {
		return nil, err
	}
	c := pattern.NewChart(pattern.CraftCrochet)
	c.Foundation = true

	foundation := make([]pattern.Stitch, p.Width+1)
	for i := range foundation {
		foundation[i] = pattern.Ch
	}
	c.Append(foundation...)

	for row := 1; row <= p.Height; row++ {
		stitches := make([]pattern.Stitch, 0, p.Width+1)
		stitches = append(stitches, pattern.Ch)
		for i := 0; i < p.Width; i++ {
			stitches = append(stitches, pattern.Sc)
		}
		c.Append(stitches...)
	}
	return c, nil
}

// shellChart: groups of five double crochets fanned into single stitches,
// alternating with plain single crochet rows.
func shellChart(p Params) (*pattern.Chart, error) {
	if err := checkDims(p.Width, p.Height); err != nil {
		return nil, err
	}
	c := pattern.NewChart(pattern.CraftCrochet)
	c.Foundation = true

	foundation := make([]pattern.Stitch, p.Width+2)
	for i := range foundation {
		foundation[i] = pattern.Ch
	}
	c.Append(foundation...)

	for row := 1; row <= p.Height; row++ {
		stitches := []pattern.Stitch{pattern.Ch, pattern.Ch, pattern.Ch}
		for x := 0; x < p.Width; x += 6 {
			if row%2 == 1 {
				stitches = append(stitches, pattern.Dc, pattern.Dc, pattern.Dc, pattern.Dc, pattern.Dc)
				if x+6 < p.Width {
					stitches = append(stitches, pattern.Sc)
				}
			} else {
				stitches = append(stitches, pattern.Sc, pattern.Sc)
			}
		}
		c.Append(stitches...)
	}
	return c, nil
}
