// Package pipeline provides the core generation pipeline for Stitchery.
//
// This package implements the complete generate → gauge → render pipeline
// shared by the CLI commands and the interactive preview. Centralizing it
// keeps defaults and validation consistent across every entry point.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: Build the pattern representations (grid, chart) a recipe
//     offers, sized by the requested parameters, with an optional gauge
//     attached for physical-size output.
//  2. Render: Encode the representations in the requested output formats
//     (ascii, text, svg, png, pdf, dot, diagram).
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Recipe:  "garter",
//	    Width:   24,
//	    Height:  16,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/stitchery/stitchery/pkg/export"
	"github.com/stitchery/stitchery/pkg/pattern"
	"github.com/stitchery/stitchery/pkg/units"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Preview
// =============================================================================

const (
	// DefaultWidth is the default pattern width in stitches.
	DefaultWidth = 24

	// DefaultHeight is the default pattern height in rows.
	DefaultHeight = 16

	// DefaultRounds is the default round count for circular motifs.
	DefaultRounds = 4

	// DefaultFormat is the format used when none is requested.
	DefaultFormat = string(export.FormatASCII)
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
type Options struct {
	// Generate options
	Recipe     string `json:"recipe"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Rounds     int    `json:"rounds,omitempty"`
	RibWidth   int    `json:"rib_width,omitempty"`
	BlockSize  int    `json:"block_size,omitempty"`
	CableWidth int    `json:"cable_width,omitempty"`

	// Craft, when set, overrides the recipe's craft on the generated
	// patterns, changing the stitch vocabulary text output uses.
	Craft string `json:"craft,omitempty"`

	// Gauge, when set, is attached to every generated pattern so text
	// output can report a finished size.
	Gauge *units.Gauge `json:"gauge,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	CellSize float64  `json:"cell_size,omitempty"`
	Padding  float64  `json:"padding,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !export.Valid(export.Format(format)) {
		return fmt.Errorf("invalid format: %q (must be one of: ascii, text, svg, png, pdf, dot, diagram)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks required fields for pattern generation.
func (o *Options) ValidateForGenerate() error {
	if o.Recipe == "" {
		return fmt.Errorf("recipe is required")
	}
	if o.Width < 0 || o.Height < 0 || o.Rounds < 0 {
		return fmt.Errorf("dimensions must not be negative")
	}
	if o.Craft != "" && !pattern.Craft(o.Craft).Valid() {
		return fmt.Errorf("invalid craft: %q (must be knit or crochet)", o.Craft)
	}

	// Generate defaults
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Rounds == 0 {
		o.Rounds = DefaultRounds
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.CellSize == 0 {
		o.CellSize = export.DefaultCellSize
	}
	if o.Padding == 0 {
		o.Padding = export.DefaultPadding
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// NeedsGrid reports whether any requested format draws the boolean grid.
func (o *Options) NeedsGrid() bool {
	for _, f := range o.Formats {
		switch export.Format(f) {
		case export.FormatASCII, export.FormatText, export.FormatSVG, export.FormatPNG, export.FormatPDF:
			return true
		}
	}
	return false
}

// NeedsChart reports whether any requested format uses the stitch chart.
func (o *Options) NeedsChart() bool {
	for _, f := range o.Formats {
		switch export.Format(f) {
		case export.FormatText, export.FormatDOT, export.FormatDiagram:
			return true
		}
	}
	return false
}

// RenderOptions returns the export geometry options for this run.
func (o *Options) RenderOptions() []export.Option {
	return []export.Option{
		export.WithCellSize(o.CellSize),
		export.WithPadding(o.Padding),
	}
}
