package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStitch is returned by [Chart.Validate] when a token does not
// belong to the chart craft's vocabulary.
var ErrInvalidStitch = errors.New("stitch not in craft vocabulary")

// Row is one row or round of a chart: an ordered sequence of stitch tokens.
// Orientation (RS/WS, Row/Rnd) and numbering are derived from the row's
// position in the chart, never stored here, so they cannot diverge.
type Row struct {
	Stitches []Stitch
}

// Chart is an ordered sequence of rows or rounds of semantic stitch tokens.
// Knitting charts alternate right-side and wrong-side rows; crochet charts
// are worked in rows or rounds depending on WorkedInRounds.
type Chart struct {
	Craft Craft

	// WorkedInRounds labels rows as rounds ("Rnd N") for circular crochet.
	WorkedInRounds bool

	// Foundation marks the first row as a foundation chain, numbered 0
	// (crochet rectangles start with one before row 1).
	Foundation bool

	Rows []Row
}

// NewChart constructs an empty chart for the given craft.
func NewChart(craft Craft) *Chart {
	return &Chart{Craft: craft}
}

// Append adds a row of stitches to the chart.
func (c *Chart) Append(stitches ...Stitch) {
	c.Rows = append(c.Rows, Row{Stitches: stitches})
}

// Number returns the human row number for row index i: 1-based, or 0-based
// when the chart starts with a foundation chain.
func (c *Chart) Number(i int) int {
	if c.Foundation {
		return i
	}
	return i + 1
}

// RightSide reports whether row index i is a right-side row. Knitting rows
// alternate starting with RS on row 1; the flag is meaningless for crochet.
func (c *Chart) RightSide(i int) bool {
	return c.Number(i)%2 == 1
}

// Label returns the display label for row index i: "Row N (RS)" or
// "Row N (WS)" for knitting, "Rnd N" for rounds, "Row N" otherwise.
func (c *Chart) Label(i int) string {
	n := c.Number(i)
	switch {
	case c.Craft == CraftKnit:
		side := "WS"
		if c.RightSide(i) {
			side = "RS"
		}
		return fmt.Sprintf("Row %d (%s)", n, side)
	case c.WorkedInRounds:
		return fmt.Sprintf("Rnd %d", n)
	default:
		return fmt.Sprintf("Row %d", n)
	}
}

// Line renders row index i as its label plus comma-joined tokens.
func (c *Chart) Line(i int) string {
	tokens := make([]string, len(c.Rows[i].Stitches))
	for j, s := range c.Rows[i].Stitches {
		tokens[j] = string(s)
	}
	return c.Label(i) + ": " + strings.Join(tokens, ", ")
}

// Validate checks that every token belongs to the craft's vocabulary.
// Charts never mix vocabularies; generators run this after filling.
func (c *Chart) Validate() error {
	vocab := Vocabulary(c.Craft)
	allowed := make(map[Stitch]bool, len(vocab))
	for _, s := range vocab {
		allowed[s] = true
	}
	for i, r := range c.Rows {
		for _, s := range r.Stitches {
			if !allowed[s] {
				return fmt.Errorf("row %d: %q: %w", c.Number(i), s, ErrInvalidStitch)
			}
		}
	}
	return nil
}

// StitchCounts returns the token count of each row in order.
func (c *Chart) StitchCounts() []int {
	counts := make([]int, len(c.Rows))
	for i, r := range c.Rows {
		counts[i] = len(r.Stitches)
	}
	return counts
}

// WidestRow returns the largest token count across all rows, or 0 for an
// empty chart.
func (c *Chart) WidestRow() int {
	widest := 0
	for _, r := range c.Rows {
		if len(r.Stitches) > widest {
			widest = len(r.Stitches)
		}
	}
	return widest
}

// Repeat returns the shortest stitch sequence that the first row is a whole
// number of copies of, or nil for an empty chart. A result as long as the
// row itself means no shorter repeat exists.
func (c *Chart) Repeat() []Stitch {
	if len(c.Rows) == 0 {
		return nil
	}
	first := c.Rows[0].Stitches
	for p := 1; p <= len(first)/2; p++ {
		if len(first)%p != 0 {
			continue
		}
		ok := true
		for i := range first {
			if first[i] != first[i%p] {
				ok = false
				break
			}
		}
		if ok {
			return first[:p]
		}
	}
	return first
}

// Equal reports whether two charts have identical structure and tokens.
func (c *Chart) Equal(o *Chart) bool {
	if c.Craft != o.Craft || c.WorkedInRounds != o.WorkedInRounds ||
		c.Foundation != o.Foundation || len(c.Rows) != len(o.Rows) {
		return false
	}
	for i := range c.Rows {
		if len(c.Rows[i].Stitches) != len(o.Rows[i].Stitches) {
			return false
		}
		for j := range c.Rows[i].Stitches {
			if c.Rows[i].Stitches[j] != o.Rows[i].Stitches[j] {
				return false
			}
		}
	}
	return true
}
