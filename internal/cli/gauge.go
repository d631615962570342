package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stitchery/stitchery/pkg/pattern"
	"github.com/stitchery/stitchery/pkg/units"
)

// gaugeCommand creates the gauge command group for swatch math.
func (c *CLI) gaugeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gauge",
		Short: "Convert gauge measurements and suggest tool sizes",
	}
	cmd.AddCommand(c.gaugeConvertCommand())
	cmd.AddCommand(c.gaugeSizeCommand())
	cmd.AddCommand(c.gaugeToolCommand())
	return cmd
}

// gaugeConvertCommand converts a length between centimeters and inches.
func (c *CLI) gaugeConvertCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert [value]",
		Short: "Convert a length between cm and inch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			if err := validateUnits(from, to); err != nil {
				return err
			}
			out := units.Convert(v, units.Unit(from), units.Unit(to))
			printKeyValue(fmt.Sprintf("%g %s", v, from), fmt.Sprintf("%.2f %s", out, to))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", string(units.Centimeter), "source unit: cm or inch")
	cmd.Flags().StringVar(&to, "to", string(units.Inch), "target unit: cm or inch")
	return cmd
}

// gaugeSizeCommand computes cast-on counts for a target physical size.
func (c *CLI) gaugeSizeCommand() *cobra.Command {
	var width, height float64
	var gauge, unit string

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute stitch and row counts for a target size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("--width and --height must be positive")
			}
			g, err := c.resolveGauge(gauge, unit)
			if err != nil {
				return err
			}
			if g == nil {
				return fmt.Errorf("--gauge is required")
			}

			stitches, rows := units.ToStitchCount(width, height, *g)
			printKeyValue("Cast on", fmt.Sprintf("%d stitches", stitches))
			printKeyValue("Work", fmt.Sprintf("%d rows", rows))

			// Echo back the size those counts actually produce.
			w, h := units.ToPhysical(stitches, rows, *g)
			printDetail("actual size: %.1f × %.1f %s", units.Round1(w), units.Round1(h), g.Unit)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "target width")
	cmd.Flags().Float64Var(&height, "height", 0, "target height")
	cmd.Flags().StringVar(&gauge, "gauge", "", "gauge preset name or stitches,rows,tool")
	cmd.Flags().StringVar(&unit, "unit", string(units.Centimeter), "measurement unit: cm or inch")
	return cmd
}

// gaugeToolCommand suggests standard needle or hook sizes.
func (c *CLI) gaugeToolCommand() *cobra.Command {
	var craft, yarn string

	cmd := &cobra.Command{
		Use:   "tool [size-mm]",
		Short: "Snap a tool size to the standard range, or suggest one for a yarn weight",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cr := pattern.Craft(craft)
			if !cr.Valid() {
				return fmt.Errorf("invalid craft %q (must be knit or crochet)", craft)
			}
			if len(args) == 1 {
				return runToolSnap(cr, args[0])
			}
			if yarn == "" {
				return fmt.Errorf("a size argument or --yarn is required")
			}
			return runToolSuggest(cr, yarn)
		},
	}

	cmd.Flags().StringVar(&craft, "craft", string(pattern.CraftKnit), "craft: knit or crochet")
	cmd.Flags().StringVar(&yarn, "yarn", "", "yarn weight, e.g. lace, sport, dk, worsted, aran, chunky")
	return cmd
}

func runToolSnap(craft pattern.Craft, arg string) error {
	mm, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", arg, err)
	}

	closest := units.ClosestNeedleSize(mm)
	standard := units.IsStandardNeedle(mm)
	label := "needle"
	if craft == pattern.CraftCrochet {
		closest = units.ClosestHookSize(mm)
		standard = units.IsStandardHook(mm)
		label = "hook"
	}

	if standard {
		printSuccess("%.1fmm is a standard %s size", mm, label)
		return nil
	}
	printKeyValue("Closest "+label, fmt.Sprintf("%.1fmm", closest))
	return nil
}

func runToolSuggest(craft pattern.Craft, yarn string) error {
	rec, ok := units.KnitGaugeForYarn(yarn)
	label := "needles"
	if craft == pattern.CraftCrochet {
		rec, ok = units.CrochetGaugeForYarn(yarn)
		label = "hooks"
	}
	if !ok {
		return fmt.Errorf("unknown yarn weight %q", yarn)
	}

	parts := make([]string, len(rec.ToolSizes))
	for i, s := range rec.ToolSizes {
		parts[i] = fmt.Sprintf("%.1fmm", s)
	}
	printKeyValue("Suggested "+label, strings.Join(parts, ", "))
	printKeyValue("Typical gauge", fmt.Sprintf("%.1f-%.1f sts/cm", rec.Gauge.Min, rec.Gauge.Max))
	printDetail("start swatching at %.1f sts/cm on %.1fmm", rec.Gauge.Typical(), rec.RecommendedTool)
	return nil
}

func validateUnits(unitNames ...string) error {
	for _, u := range unitNames {
		if units.Unit(u) != units.Centimeter && units.Unit(u) != units.Inch {
			return fmt.Errorf("invalid unit %q (must be cm or inch)", u)
		}
	}
	return nil
}
