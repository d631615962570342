package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stitchery/stitchery/pkg/export"
	"github.com/stitchery/stitchery/pkg/pipeline"
	"github.com/stitchery/stitchery/pkg/units"
)

// generateOpts holds the command-line flags for the generate command.
// These options control pattern dimensions, gauge, and output formats.
type generateOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats: ascii, text, svg, png, pdf, dot, diagram
	width      int      // pattern width in stitches
	height     int      // pattern height in rows
	rounds     int      // round count for circular motifs
	ribWidth   int      // rib block width
	blockSize  int      // moss block size
	cableWidth int      // cable panel width
	cellSize   float64  // image cell size
	padding    float64  // image margin
	gauge      string   // gauge preset name or "stitches,rows,tool"
	unit       string   // measurement unit for an inline gauge: cm or inch
	craft      string   // optional craft override: knit or crochet
}

// generateCommand creates the generate command for building patterns.
// It runs the full generate → render pipeline and writes one file per
// requested format.
//
// Default settings:
//   - width: 24 stitches, height: 16 rows, rounds: 4
//   - format: ascii (or the config file's format)
//   - text-based formats go to stdout unless --output is given
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		cellSize: c.Config.CellSize,
		padding:  c.Config.Padding,
		unit:     string(units.Centimeter),
	}

	cmd := &cobra.Command{
		Use:   "generate [recipe]",
		Short: "Generate a pattern and export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = c.parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): ascii (default), text, svg, png, pdf, dot, diagram (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "pattern width in stitches")
	cmd.Flags().IntVar(&opts.height, "height", 0, "pattern height in rows")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 0, "round count for circular motifs")
	cmd.Flags().IntVar(&opts.ribWidth, "rib-width", 0, "rib block width in stitches")
	cmd.Flags().IntVar(&opts.blockSize, "block-size", 0, "moss block size in stitches")
	cmd.Flags().IntVar(&opts.cableWidth, "cable-width", 0, "cable panel width in stitches")
	cmd.Flags().Float64Var(&opts.cellSize, "cell-size", opts.cellSize, "cell size for image formats")
	cmd.Flags().Float64Var(&opts.padding, "padding", opts.padding, "margin for image formats")
	cmd.Flags().StringVar(&opts.gauge, "gauge", "", "gauge preset name or stitches,rows,tool (e.g. 1.8,2.4,4.5)")
	cmd.Flags().StringVar(&opts.unit, "unit", opts.unit, "measurement unit for --gauge: cm or inch")
	cmd.Flags().StringVar(&opts.craft, "craft", "", "override the recipe's craft: knit or crochet")

	return cmd
}

// parseFormats parses a comma-separated format string into a slice.
// If empty, the config file's format is used, falling back to ascii.
func (c *CLI) parseFormats(s string) []string {
	if s == "" {
		if c.Config.Format != "" {
			return []string{c.Config.Format}
		}
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}

// runGenerate executes the pipeline for the named recipe and writes the
// resulting artifacts.
func (c *CLI) runGenerate(ctx context.Context, recipeName string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	gauge, err := c.resolveGauge(opts.gauge, opts.unit)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Recipe:     recipeName,
		Width:      opts.width,
		Height:     opts.height,
		Rounds:     opts.rounds,
		RibWidth:   opts.ribWidth,
		BlockSize:  opts.blockSize,
		CableWidth: opts.cableWidth,
		Craft:      opts.craft,
		Gauge:      gauge,
		Formats:    opts.formats,
		CellSize:   opts.cellSize,
		Padding:    opts.padding,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %d artifact(s)", len(result.Artifacts)))

	if len(opts.formats) == 1 {
		return writeArtifact(result.Artifacts[opts.formats[0]], outputPath(opts.output, recipeName, opts.formats[0]))
	}

	base := basePath(opts.output, recipeName)
	for _, f := range opts.formats {
		if err := writeArtifact(result.Artifacts[f], fmt.Sprintf("%s.%s", base, f)); err != nil {
			return err
		}
	}
	return nil
}

// resolveGauge turns the --gauge flag into a validated gauge. The flag may
// name a preset from the config file or carry an inline stitches,rows,tool
// triple measured in --unit.
func (c *CLI) resolveGauge(arg, unit string) (*units.Gauge, error) {
	if arg == "" {
		return nil, nil
	}

	if preset, ok := c.Config.Gauges[arg]; ok {
		g, err := preset.Gauge()
		if err != nil {
			return nil, fmt.Errorf("gauge preset %q: %w", arg, err)
		}
		return &g, nil
	}

	if unit != "" {
		if err := validateUnits(unit); err != nil {
			return nil, err
		}
	}
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid gauge %q (expected preset name or stitches,rows,tool)", arg)
	}
	vals := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid gauge %q: %w", arg, err)
		}
		vals[i] = v
	}

	g, err := units.NewGauge(vals[0], vals[1], vals[2], units.Unit(unit))
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// outputPath resolves the destination for a single-format run. Text-based
// formats default to stdout; binary formats derive a file name from the
// recipe.
func outputPath(output, recipeName, format string) string {
	if output != "" {
		return output
	}
	switch export.Format(format) {
	case export.FormatASCII, export.FormatText, export.FormatDOT:
		return "" // stdout
	}
	return fmt.Sprintf("%s.%s", recipeName, format)
}

// basePath derives the base output path for multi-format runs.
// If output has a known format extension, it is stripped.
func basePath(output, recipeName string) string {
	if output == "" {
		return recipeName
	}
	ext := filepath.Ext(output)
	if export.Valid(export.Format(strings.TrimPrefix(ext, "."))) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifact writes data to path, or stdout when path is empty.
func writeArtifact(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		printFile(path)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
