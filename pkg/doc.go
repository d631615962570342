// Package pkg provides the core libraries for Stitchery pattern generation.
//
// # Overview
//
// Stitchery turns parametric recipes into knitting and crochet patterns and
// exports them in textual and graphical formats. The pkg directory is
// organized into five main areas:
//
//  1. [units] - Gauge math and metric/imperial conversion
//  2. [pattern] - Pattern representations (boolean grid, semantic chart)
//  3. [recipe] - The recipe registry and generators
//  4. [export] - Output encoders (ascii, text, svg, png, pdf, dot, diagram)
//  5. [pipeline] - Orchestration (generate → gauge → render)
//
// # Architecture
//
// The typical data flow through Stitchery:
//
//	Recipe + Params
//	     ↓
//	[recipe] package (generate grid and/or chart)
//	     ↓
//	[pattern] package (representation + optional gauge)
//	     ↓
//	[export] package (encode each requested format)
//	     ↓
//	ASCII/Text/SVG/PNG/PDF/DOT output
//
// # Quick Start
//
// Generate a pattern and render it:
//
//	import (
//	    "github.com/stitchery/stitchery/pkg/export"
//	    "github.com/stitchery/stitchery/pkg/recipe"
//	)
//
//	// 1. Look up a recipe
//	rec, _ := recipe.Get("rib")
//
//	// 2. Generate the grid representation
//	p, _ := rec.GridPattern(recipe.Params{Width: 24, Height: 16})
//
//	// 3. Render to SVG
//	svg, _ := export.Export(p, export.FormatSVG)
//
// # Main Packages
//
// [units] - Pure gauge math: converting lengths and gauge rates between
// centimeters and inches, deriving physical size from stitch counts (and
// the inverse), and snapping tool diameters to the standard needle and
// hook series.
//
// [pattern] - The two pattern representations. A Grid is a boolean matrix
// of worked/background cells for colorwork-style charts; a Chart is an
// ordered sequence of rows of semantic stitch tokens (k, p, sc, dc, ...)
// with derived row numbering and RS/WS orientation.
//
// [recipe] - The registry of built-in pattern generators: garter,
// stockinette, rib, seed, moss, and cable for knitting; granny squares,
// single crochet rectangles, and shell stitch for crochet. A recipe offers
// a grid generator, a chart generator, or both.
//
// [export] - One encoder per output format. Image formats draw the grid;
// graph formats lay out the chart via Graphviz; text prefers the chart and
// falls back to run-length grid instructions.
//
// [pipeline] - The complete generation pipeline used by the CLI commands
// and the interactive preview, keeping defaults and validation consistent
// across entry points.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/recipe/...     # Specific package
//
// [units]: https://pkg.go.dev/github.com/stitchery/stitchery/pkg/units
// [pattern]: https://pkg.go.dev/github.com/stitchery/stitchery/pkg/pattern
// [recipe]: https://pkg.go.dev/github.com/stitchery/stitchery/pkg/recipe
// [export]: https://pkg.go.dev/github.com/stitchery/stitchery/pkg/export
// [pipeline]: https://pkg.go.dev/github.com/stitchery/stitchery/pkg/pipeline
package pkg
