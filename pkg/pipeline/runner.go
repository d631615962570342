package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/stitchery/stitchery/pkg/export"
	"github.com/stitchery/stitchery/pkg/pattern"
	"github.com/stitchery/stitchery/pkg/recipe"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the package default is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string

	// GridPattern holds the grid representation, when the recipe offers
	// one and a requested format needs it.
	GridPattern *pattern.Pattern

	// ChartPattern holds the chart representation, when the recipe
	// offers one and a requested format needs it.
	ChartPattern *pattern.Pattern

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowCount     int
	StitchCount  int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// Execute runs the complete generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	generateStart := time.Now()
	if err := r.Generate(ctx, opts, result); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Stats.GenerateTime = time.Since(generateStart)

	r.Logger.Info("generated pattern",
		"run", result.RunID,
		"recipe", opts.Recipe,
		"rows", result.Stats.RowCount,
		"stitches", result.Stats.StitchCount,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	if err := r.Render(ctx, opts, result); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"run", result.RunID,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate builds the pattern representations the requested formats need
// and stores them on result. Representation mismatches (e.g. an image
// format against a chart-only recipe) are deferred to the render stage so
// the error names the offending format.
func (r *Runner) Generate(ctx context.Context, opts Options, result *Result) error {
	if err := opts.ValidateForGenerate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rec, err := recipe.Get(opts.Recipe)
	if err != nil {
		return err
	}

	params := recipe.Params{
		Width:      opts.Width,
		Height:     opts.Height,
		Rounds:     opts.Rounds,
		RibWidth:   opts.RibWidth,
		BlockSize:  opts.BlockSize,
		CableWidth: opts.CableWidth,
	}

	if rec.HasGrid() && opts.NeedsGrid() {
		p, err := rec.GridPattern(params)
		if err != nil {
			return err
		}
		if opts.Gauge != nil {
			p.SetGauge(*opts.Gauge)
		}
		if opts.Craft != "" {
			p.Craft = pattern.Craft(opts.Craft)
		}
		result.GridPattern = p
		result.Stats.RowCount = p.Grid.Height
		result.Stats.StitchCount = p.Grid.Width * p.Grid.Height
	}

	if rec.HasChart() && opts.NeedsChart() {
		p, err := rec.ChartPattern(params)
		if err != nil {
			return err
		}
		if opts.Gauge != nil {
			p.SetGauge(*opts.Gauge)
		}
		if opts.Craft != "" {
			p.Craft = pattern.Craft(opts.Craft)
		}
		result.ChartPattern = p
		result.Stats.RowCount = len(p.Chart.Rows)
		total := 0
		for _, n := range p.Chart.StitchCounts() {
			total += n
		}
		result.Stats.StitchCount = total
	}

	return nil
}

// Render encodes the generated representations in every requested format.
func (r *Runner) Render(ctx context.Context, opts Options, result *Result) error {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return err
	}
	renderOpts := opts.RenderOptions()

	for _, f := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		format := export.Format(f)
		data, err := export.Export(r.patternFor(format, result), format, renderOpts...)
		if err != nil {
			return err
		}
		result.Artifacts[f] = data
	}
	return nil
}

// patternFor picks the representation a format renders. Text prefers the
// stitch chart and falls back to the grid; image formats take the grid,
// graph formats the chart.
func (r *Runner) patternFor(f export.Format, result *Result) *pattern.Pattern {
	switch f {
	case export.FormatDOT, export.FormatDiagram:
		return result.ChartPattern
	case export.FormatText:
		if result.ChartPattern != nil {
			return result.ChartPattern
		}
		return result.GridPattern
	default:
		return result.GridPattern
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
