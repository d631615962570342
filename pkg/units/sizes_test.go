package units

import "testing"

func TestClosestNeedleSize(t *testing.T) {
	tests := []struct {
		name string
		mm   float64
		want float64
	}{
		{name: "standard size", mm: 4.5, want: 4.5},
		{name: "between sizes", mm: 4.2, want: 4.0},
		{name: "rounds up", mm: 4.8, want: 5.0},
		{name: "tiny", mm: 0.5, want: 2.0},
		{name: "huge", mm: 40, want: 25.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestNeedleSize(tt.mm); got != tt.want {
				t.Errorf("ClosestNeedleSize(%v) = %v, want %v", tt.mm, got, tt.want)
			}
		})
	}
}

func TestClosestHookSize(t *testing.T) {
	// The hook series diverges from needles above 15mm (19 vs 20).
	if got := ClosestHookSize(18); got != 19.0 {
		t.Errorf("ClosestHookSize(18) = %v, want 19", got)
	}
	if got := ClosestNeedleSize(18); got != 20.0 {
		t.Errorf("ClosestNeedleSize(18) = %v, want 20", got)
	}
}

func TestIsStandard(t *testing.T) {
	if !IsStandardNeedle(3.25) {
		t.Error("IsStandardNeedle(3.25) = false")
	}
	if IsStandardNeedle(3.3) {
		t.Error("IsStandardNeedle(3.3) = true")
	}
	if !IsStandardHook(19.0) {
		t.Error("IsStandardHook(19) = false")
	}
	if IsStandardHook(20.0) {
		t.Error("IsStandardHook(20) = true")
	}
}

func TestGaugeForYarn(t *testing.T) {
	tests := []struct {
		name            string
		lookup          func(string) (GaugeRecommendation, bool)
		weight          string
		wantMin         float64
		wantMax         float64
		wantTypical     float64
		wantRecommended float64
	}{
		{"knit worsted", KnitGaugeForYarn, "worsted", 1.6, 2.0, 1.8, 5.0},
		{"knit dk", KnitGaugeForYarn, "dk", 1.8, 2.2, 2.0, 4.5},
		{"crochet worsted", CrochetGaugeForYarn, "worsted", 1.2, 1.6, 1.4, 6.0},
		{"crochet thread", CrochetGaugeForYarn, "thread", 3.2, 4.8, 4.0, 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := tt.lookup(tt.weight)
			if !ok {
				t.Fatalf("no recommendation for %q", tt.weight)
			}
			if rec.Gauge.Min != tt.wantMin || rec.Gauge.Max != tt.wantMax {
				t.Errorf("gauge range = %.1f-%.1f, want %.1f-%.1f",
					rec.Gauge.Min, rec.Gauge.Max, tt.wantMin, tt.wantMax)
			}
			if got := rec.Gauge.Typical(); got != tt.wantTypical {
				t.Errorf("typical gauge = %g, want %g", got, tt.wantTypical)
			}
			if rec.RecommendedTool != tt.wantRecommended {
				t.Errorf("recommended tool = %g, want %g", rec.RecommendedTool, tt.wantRecommended)
			}
		})
	}

	if _, ok := KnitGaugeForYarn("thread"); ok {
		t.Error("thread is a crochet-only weight")
	}
	if _, ok := KnitGaugeForYarn("mystery"); ok {
		t.Error("unknown weight should have no recommendation")
	}
}

func TestSizesForYarn(t *testing.T) {
	if got := NeedlesForYarn("worsted"); len(got) == 0 {
		t.Error("NeedlesForYarn(worsted) is empty")
	}
	if got := NeedlesForYarn("unobtainium"); got != nil {
		t.Errorf("NeedlesForYarn(unobtainium) = %v, want nil", got)
	}
	if got := HooksForYarn("thread"); len(got) == 0 {
		t.Error("HooksForYarn(thread) is empty")
	}

	// Every recommended size for a weight should be a standard size.
	for _, mm := range NeedlesForYarn("dk") {
		if !IsStandardNeedle(mm) {
			t.Errorf("dk needle %v is not a standard size", mm)
		}
	}
}
