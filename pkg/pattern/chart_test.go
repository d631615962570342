package pattern

import (
	"errors"
	"strings"
	"testing"
)

func TestChartNumbering(t *testing.T) {
	plain := NewChart(CraftKnit)
	plain.Append(K, K)
	plain.Append(P, P)

	if got := plain.Number(0); got != 1 {
		t.Errorf("Number(0) = %d, want 1", got)
	}
	if got := plain.Number(1); got != 2 {
		t.Errorf("Number(1) = %d, want 2", got)
	}

	founded := NewChart(CraftCrochet)
	founded.Foundation = true
	founded.Append(Ch, Ch, Ch)
	founded.Append(Ch, Sc, Sc)

	if got := founded.Number(0); got != 0 {
		t.Errorf("foundation Number(0) = %d, want 0", got)
	}
	if got := founded.Number(1); got != 1 {
		t.Errorf("foundation Number(1) = %d, want 1", got)
	}
}

func TestChartLabel(t *testing.T) {
	tests := []struct {
		name    string
		chart   func() *Chart
		index   int
		want    string
	}{
		{
			name: "knit right side",
			chart: func() *Chart {
				c := NewChart(CraftKnit)
				c.Append(K)
				c.Append(P)
				return c
			},
			index: 0,
			want:  "Row 1 (RS)",
		},
		{
			name: "knit wrong side",
			chart: func() *Chart {
				c := NewChart(CraftKnit)
				c.Append(K)
				c.Append(P)
				return c
			},
			index: 1,
			want:  "Row 2 (WS)",
		},
		{
			name: "crochet round",
			chart: func() *Chart {
				c := NewChart(CraftCrochet)
				c.WorkedInRounds = true
				c.Append(Ch, Dc)
				return c
			},
			index: 0,
			want:  "Rnd 1",
		},
		{
			name: "crochet flat row",
			chart: func() *Chart {
				c := NewChart(CraftCrochet)
				c.Append(Ch, Sc)
				return c
			},
			index: 0,
			want:  "Row 1",
		},
		{
			name: "foundation chain is row zero",
			chart: func() *Chart {
				c := NewChart(CraftCrochet)
				c.Foundation = true
				c.Append(Ch, Ch)
				return c
			},
			index: 0,
			want:  "Row 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chart().Label(tt.index); got != tt.want {
				t.Errorf("Label(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestChartLine(t *testing.T) {
	c := NewChart(CraftKnit)
	c.Append(K, K, P, P)

	want := "Row 1 (RS): k, k, p, p"
	if got := c.Line(0); got != want {
		t.Errorf("Line(0) = %q, want %q", got, want)
	}
}

func TestChartCounts(t *testing.T) {
	c := NewChart(CraftCrochet)
	c.WorkedInRounds = true
	c.Append(Ch, Ch, Ch)
	c.Append(Dc, Dc, Dc, Dc, Dc)

	counts := c.StitchCounts()
	if len(counts) != 2 || counts[0] != 3 || counts[1] != 5 {
		t.Errorf("StitchCounts() = %v, want [3 5]", counts)
	}
	if got := c.WidestRow(); got != 5 {
		t.Errorf("WidestRow() = %d, want 5", got)
	}
}

func TestChartRepeat(t *testing.T) {
	rib := NewChart(CraftKnit)
	rib.Append(K, K, P, P, K, K, P, P)

	rep := rib.Repeat()
	want := []Stitch{K, K, P, P}
	if len(rep) != len(want) {
		t.Fatalf("Repeat() length = %d, want %d", len(rep), len(want))
	}
	for i := range want {
		if rep[i] != want[i] {
			t.Errorf("Repeat()[%d] = %q, want %q", i, rep[i], want[i])
		}
	}

	irregular := NewChart(CraftKnit)
	irregular.Append(K, P, P)
	if got := irregular.Repeat(); len(got) != 3 {
		t.Errorf("irregular Repeat() length = %d, want full row", len(got))
	}

	empty := NewChart(CraftKnit)
	if got := empty.Repeat(); got != nil {
		t.Errorf("empty Repeat() = %v, want nil", got)
	}
}

func TestChartValidate(t *testing.T) {
	knit := NewChart(CraftKnit)
	knit.Append(K, P, C4F, YO)
	if err := knit.Validate(); err != nil {
		t.Errorf("valid knit chart rejected: %v", err)
	}

	crochet := NewChart(CraftCrochet)
	crochet.Append(Ch, Sc, Dc)
	if err := crochet.Validate(); err != nil {
		t.Errorf("valid crochet chart rejected: %v", err)
	}

	mixed := NewChart(CraftKnit)
	mixed.Append(K, K)
	mixed.Append(K, Sc)
	err := mixed.Validate()
	if !errors.Is(err, ErrInvalidStitch) {
		t.Fatalf("error = %v, want ErrInvalidStitch", err)
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("error %q should name the offending row", err)
	}
}

func TestStitchMirror(t *testing.T) {
	if got := K.Mirror(); got != P {
		t.Errorf("K.Mirror() = %q, want p", got)
	}
	if got := P.Mirror(); got != K {
		t.Errorf("P.Mirror() = %q, want k", got)
	}
	if got := Sc.Mirror(); got != Sc {
		t.Errorf("Sc.Mirror() = %q, want sc", got)
	}
}

func TestVocabulary(t *testing.T) {
	knit := Vocabulary(CraftKnit)
	crochet := Vocabulary(CraftCrochet)

	if len(knit) == 0 || len(crochet) == 0 {
		t.Fatal("vocabularies should be non-empty")
	}
	for _, s := range knit {
		if s == Ch {
			t.Error("knit vocabulary contains chain")
		}
	}
	for _, s := range crochet {
		if s == K {
			t.Error("crochet vocabulary contains knit")
		}
	}
}
