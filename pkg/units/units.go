// Package units provides gauge and unit-conversion math for stitch patterns.
//
// A [Gauge] describes how many stitches and rows a crafter produces per unit
// of length with a given tool. All functions here are pure: converting
// between metric and imperial measurements, deriving physical dimensions
// from stitch counts (and the inverse), and snapping tool sizes to the
// standard metric series.
//
// Physical dimensions are computed at full float precision; [Round1] exists
// for display rounding only.
package units

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGauge is returned by [NewGauge] when a gauge rate or tool size
// is zero or negative.
var ErrInvalidGauge = errors.New("gauge values must be positive")

// Unit is a length unit for gauge measurements.
type Unit string

const (
	// Centimeter is the metric unit (gauge rates in sts/cm, rows/cm).
	Centimeter Unit = "cm"
	// Inch is the imperial unit (gauge rates in sts/inch, rows/inch).
	Inch Unit = "inch"
)

// CmPerInch is the exact metric/imperial conversion factor.
const CmPerInch = 2.54

// Gauge describes stitch density: stitches and rows per unit of length,
// and the tool (needle or hook) diameter in millimeters.
type Gauge struct {
	Stitches float64 // stitches per unit of length
	Rows     float64 // rows per unit of length
	ToolSize float64 // needle or hook diameter in mm
	Unit     Unit
}

// NewGauge validates and constructs a Gauge. Rates and tool size must be
// strictly positive; unit defaults to [Centimeter] when empty.
func NewGauge(stitches, rows, toolSize float64, unit Unit) (Gauge, error) {
	if stitches <= 0 || rows <= 0 {
		return Gauge{}, fmt.Errorf("%w: %g sts, %g rows", ErrInvalidGauge, stitches, rows)
	}
	if toolSize <= 0 {
		return Gauge{}, fmt.Errorf("%w: tool size %gmm", ErrInvalidGauge, toolSize)
	}
	if unit == "" {
		unit = Centimeter
	}
	return Gauge{Stitches: stitches, Rows: rows, ToolSize: toolSize, Unit: unit}, nil
}

// Convert converts a length measurement between metric and imperial.
// Imperial to metric multiplies by [CmPerInch]; metric to imperial divides.
// Converting to the same unit returns v unchanged.
func Convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	if from == Inch && to == Centimeter {
		return v * CmPerInch
	}
	return v / CmPerInch
}

// ConvertRate converts a gauge rate (stitches or rows per unit) between
// metric and imperial. Rates convert inversely to lengths: a per-inch rate
// divided by 2.54 yields the per-cm rate.
func ConvertRate(rate float64, from, to Unit) float64 {
	if from == to {
		return rate
	}
	if from == Inch && to == Centimeter {
		return rate / CmPerInch
	}
	return rate * CmPerInch
}

// ToPhysical derives the physical width and height of a piece with the
// given stitch and row counts at gauge g. Results are full precision;
// apply [Round1] for display.
func ToPhysical(stitches, rows int, g Gauge) (width, height float64) {
	return float64(stitches) / g.Stitches, float64(rows) / g.Rows
}

// ToStitchCount derives the stitch and row counts needed to reach the given
// physical width and height at gauge g. Each dimension is rounded
// independently to the nearest integer, halves away from zero.
func ToStitchCount(width, height float64, g Gauge) (stitches, rows int) {
	return int(math.Round(width * g.Stitches)), int(math.Round(height * g.Rows))
}

// Round1 rounds v to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ClosestToolSize returns the candidate size minimizing the absolute
// difference to target. Ties prefer the smaller size. Returns 0 when
// candidates is empty.
func ClosestToolSize(target float64, candidates []float64) float64 {
	best := 0.0
	bestDiff := math.Inf(1)
	for _, c := range candidates {
		diff := math.Abs(c - target)
		if diff < bestDiff || (diff == bestDiff && c < best) {
			best = c
			bestDiff = diff
		}
	}
	return best
}
