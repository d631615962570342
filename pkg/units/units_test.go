package units

import (
	"errors"
	"math"
	"testing"
)

func TestNewGauge(t *testing.T) {
	tests := []struct {
		name     string
		stitches float64
		rows     float64
		tool     float64
		unit     Unit
		wantErr  bool
	}{
		{name: "valid metric", stitches: 1.8, rows: 2.4, tool: 4.5, unit: Centimeter},
		{name: "valid imperial", stitches: 4.5, rows: 6, tool: 4, unit: Inch},
		{name: "empty unit defaults to cm", stitches: 2, rows: 3, tool: 5},
		{name: "zero stitches", stitches: 0, rows: 2.4, tool: 4.5, wantErr: true},
		{name: "negative rows", stitches: 1.8, rows: -1, tool: 4.5, wantErr: true},
		{name: "zero tool size", stitches: 1.8, rows: 2.4, tool: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGauge(tt.stitches, tt.rows, tt.tool, tt.unit)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGauge) {
					t.Fatalf("NewGauge() error = %v, want ErrInvalidGauge", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGauge() unexpected error: %v", err)
			}
			if tt.unit == "" && g.Unit != Centimeter {
				t.Errorf("Unit = %q, want %q", g.Unit, Centimeter)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		from, to Unit
		want     float64
	}{
		{name: "inch to cm", v: 1, from: Inch, to: Centimeter, want: 2.54},
		{name: "cm to inch", v: 2.54, from: Centimeter, to: Inch, want: 1},
		{name: "same unit", v: 3.7, from: Centimeter, to: Centimeter, want: 3.7},
		{name: "ten inches", v: 10, from: Inch, to: Centimeter, want: 25.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.v, tt.from, tt.to); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(%v, %s, %s) = %v, want %v", tt.v, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for _, v := range []float64{0.1, 1, 2.54, 17.3, 100} {
		got := Convert(Convert(v, Centimeter, Inch), Inch, Centimeter)
		if math.Abs(got-v) > 0.001 {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestConvertRate(t *testing.T) {
	// A rate of 4.5 sts/inch is a sparser 4.5/2.54 sts/cm; rates move
	// inversely to lengths.
	got := ConvertRate(4.5, Inch, Centimeter)
	want := 4.5 / 2.54
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ConvertRate(4.5, inch, cm) = %v, want %v", got, want)
	}

	back := ConvertRate(got, Centimeter, Inch)
	if math.Abs(back-4.5) > 0.001 {
		t.Errorf("rate round trip = %v, want 4.5", back)
	}
}

func TestToPhysical(t *testing.T) {
	g := Gauge{Stitches: 1.8, Rows: 2.4, ToolSize: 4.5, Unit: Centimeter}

	w, h := ToPhysical(8, 4, g)
	if Round1(w) != 4.4 {
		t.Errorf("width = %v, want 4.4 after rounding", w)
	}
	if Round1(h) != 1.7 {
		t.Errorf("height = %v, want 1.7 after rounding", h)
	}
}

func TestToStitchCount(t *testing.T) {
	g := Gauge{Stitches: 2, Rows: 3, ToolSize: 4, Unit: Centimeter}

	tests := []struct {
		name          string
		width, height float64
		wantSts       int
		wantRows      int
	}{
		{name: "exact", width: 10, height: 10, wantSts: 20, wantRows: 30},
		{name: "rounds to nearest", width: 10.2, height: 10.1, wantSts: 20, wantRows: 30},
		{name: "half rounds away from zero", width: 10.25, height: 10.5, wantSts: 21, wantRows: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sts, rows := ToStitchCount(tt.width, tt.height, g)
			if sts != tt.wantSts || rows != tt.wantRows {
				t.Errorf("ToStitchCount(%v, %v) = (%d, %d), want (%d, %d)",
					tt.width, tt.height, sts, rows, tt.wantSts, tt.wantRows)
			}
		})
	}
}

func TestToPhysicalToStitchCountInverse(t *testing.T) {
	g := Gauge{Stitches: 1.8, Rows: 2.4, ToolSize: 4.5, Unit: Centimeter}

	w, h := ToPhysical(24, 16, g)
	sts, rows := ToStitchCount(w, h, g)
	if sts != 24 || rows != 16 {
		t.Errorf("inverse = (%d, %d), want (24, 16)", sts, rows)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{4.444, 4.4},
		{1.666, 1.7},
		{2.55, 2.6},
		{-1.25, -1.2},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round1(tt.v); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestClosestToolSize(t *testing.T) {
	candidates := []float64{3.5, 4.0, 4.5, 5.0}

	tests := []struct {
		name   string
		target float64
		want   float64
	}{
		{name: "exact match", target: 4.0, want: 4.0},
		{name: "nearest above", target: 4.4, want: 4.5},
		{name: "nearest below", target: 3.6, want: 3.5},
		{name: "tie prefers smaller", target: 4.25, want: 4.0},
		{name: "below range", target: 1, want: 3.5},
		{name: "above range", target: 9, want: 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestToolSize(tt.target, candidates); got != tt.want {
				t.Errorf("ClosestToolSize(%v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}

	if got := ClosestToolSize(4, nil); got != 0 {
		t.Errorf("ClosestToolSize with no candidates = %v, want 0", got)
	}
}
