// Package recipe defines the pattern generator registry.
//
// A [Recipe] is a declarative entry mapping a recipe name to its craft, its
// closed-form grid fill rule, and/or its chart token generator. Recipes are
// data, not code branches: the CLI and pipeline dispatch by looking the name
// up in the registry, and a recipe's token tables and parameters are its
// entire customization surface.
//
// Every generator is deterministic and idempotent: two calls with identical
// parameters produce structurally equal grids or charts.
package recipe

import (
	"errors"
	"fmt"
	"sort"

	"github.com/stitchery/stitchery/pkg/pattern"
)

// ErrUnknownRecipe is returned by [Get] for names not in the registry.
var ErrUnknownRecipe = errors.New("unknown recipe")

// Default recipe parameters. Callers thread these explicitly; the registry
// never consults ambient state.
const (
	DefaultRibWidth   = 2 // block width for rib patterns (2x2 rib)
	DefaultBlockSize  = 2 // block size for moss patterns
	DefaultCableWidth = 6 // cable panel width in stitches
)

// Params carries the dimensions and per-recipe knobs for generation.
// Width, height, and rounds must be positive for the recipes that use them;
// the zero value of the remaining knobs means "use the recipe default".
type Params struct {
	Width  int
	Height int
	Rounds int

	RibWidth   int // rib block width n (two-state alternation of n-wide blocks)
	BlockSize  int // moss block size
	CableWidth int // cable panel width
}

// normalized returns p with recipe knobs defaulted.
func (p Params) normalized() Params {
	if p.RibWidth == 0 {
		p.RibWidth = DefaultRibWidth
	}
	if p.BlockSize == 0 {
		p.BlockSize = DefaultBlockSize
	}
	if p.CableWidth == 0 {
		p.CableWidth = DefaultCableWidth
	}
	return p
}

// Recipe is one registry entry. Grid and Chart may each be nil when the
// recipe has no generator for that representation.
type Recipe struct {
	Name        string
	DisplayName string
	Craft       pattern.Craft
	Summary     string

	// Instructions renders the natural-language working summary for the
	// text exporter, e.g. "Knit every row."
	Instructions func(Params) string

	Grid  func(Params) (*pattern.Grid, error)
	Chart func(Params) (*pattern.Chart, error)
}

// HasGrid reports whether the recipe can produce a grid representation.
func (r Recipe) HasGrid() bool { return r.Grid != nil }

// HasChart reports whether the recipe can produce a chart representation.
func (r Recipe) HasChart() bool { return r.Chart != nil }

// GridPattern generates the grid representation wrapped in a Pattern
// envelope. The recipe must have a grid generator.
func (r Recipe) GridPattern(p Params) (*pattern.Pattern, error) {
	p = p.normalized()
	g, err := r.Grid(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name, err)
	}
	out := pattern.NewGridPattern(r.DisplayName, r.Craft, g)
	out.Instructions = r.Instructions(p)
	return out, nil
}

// ChartPattern generates the chart representation wrapped in a Pattern
// envelope. The recipe must have a chart generator.
func (r Recipe) ChartPattern(p Params) (*pattern.Pattern, error) {
	p = p.normalized()
	c, err := r.Chart(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", r.Name, err)
	}
	out := pattern.NewChartPattern(r.DisplayName, r.Craft, c)
	out.Instructions = r.Instructions(p)
	return out, nil
}

// registry maps recipe names to their entries. Populated in register.go.
var registry = map[string]Recipe{}

func register(r Recipe) {
	registry[r.Name] = r
}

// Get looks up a recipe by name.
func Get(name string) (Recipe, error) {
	r, ok := registry[name]
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %q", ErrUnknownRecipe, name)
	}
	return r, nil
}

// Names returns all registered recipe names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered recipes sorted by name.
func All() []Recipe {
	recipes := make([]Recipe, 0, len(registry))
	for _, name := range Names() {
		recipes = append(recipes, registry[name])
	}
	return recipes
}
