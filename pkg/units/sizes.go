package units

// NeedleSizes lists the standard metric knitting needle diameters in mm.
var NeedleSizes = []float64{
	2.0, 2.25, 2.5, 2.75, 3.0, 3.25, 3.5, 3.75, 4.0, 4.5, 5.0, 5.5,
	6.0, 6.5, 7.0, 8.0, 9.0, 10.0, 12.0, 15.0, 20.0, 25.0,
}

// HookSizes lists the standard metric crochet hook diameters in mm.
var HookSizes = []float64{
	2.0, 2.25, 2.5, 2.75, 3.0, 3.25, 3.5, 3.75, 4.0, 4.5, 5.0, 5.5,
	6.0, 6.5, 7.0, 8.0, 9.0, 10.0, 12.0, 15.0, 19.0, 25.0,
}

// needleForYarn maps yarn weight names to recommended needle sizes (mm).
var needleForYarn = map[string][]float64{
	"lace":         {2.0, 2.25, 2.5, 2.75, 3.25},
	"sport":        {3.25, 3.5, 3.75, 4.0},
	"dk":           {4.0, 4.5, 5.0},
	"worsted":      {4.5, 5.0, 5.5},
	"aran":         {5.0, 5.5, 6.0, 6.5},
	"chunky":       {6.5, 8.0, 9.0, 10.0},
	"super_chunky": {10.0, 12.0, 15.0, 20.0, 25.0},
}

// hookForYarn maps yarn weight names to recommended hook sizes (mm).
var hookForYarn = map[string][]float64{
	"thread":       {0.6, 0.75, 1.0, 1.25, 1.5, 1.75},
	"lace":         {2.0, 2.25, 2.5, 2.75, 3.25},
	"sport":        {3.5, 4.0, 4.5},
	"dk":           {4.5, 5.0, 5.5},
	"worsted":      {5.5, 6.0, 6.5},
	"aran":         {6.5, 8.0, 9.0},
	"chunky":       {9.0, 10.0, 12.0},
	"super_chunky": {12.0, 15.0, 19.0, 25.0},
}

// GaugeRange is the typical stitch density band for a yarn weight, in
// stitches per centimeter.
type GaugeRange struct {
	Min float64
	Max float64
}

// Typical returns the midpoint of the range.
func (r GaugeRange) Typical() float64 { return (r.Min + r.Max) / 2 }

// knitGaugeForYarn maps yarn weight names to typical knitting gauges.
var knitGaugeForYarn = map[string]GaugeRange{
	"lace":         {2.8, 4.0},
	"sport":        {2.2, 2.8},
	"dk":           {1.8, 2.2},
	"worsted":      {1.6, 2.0},
	"aran":         {1.4, 1.8},
	"chunky":       {1.0, 1.4},
	"super_chunky": {0.4, 1.0},
}

// crochetGaugeForYarn maps yarn weight names to typical crochet gauges.
var crochetGaugeForYarn = map[string]GaugeRange{
	"thread":       {3.2, 4.8},
	"lace":         {2.4, 3.2},
	"sport":        {2.0, 2.4},
	"dk":           {1.6, 2.0},
	"worsted":      {1.2, 1.6},
	"aran":         {1.0, 1.4},
	"chunky":       {0.8, 1.2},
	"super_chunky": {0.4, 0.8},
}

// GaugeRecommendation bundles the typical gauge and tool sizing for a yarn
// weight within one craft.
type GaugeRecommendation struct {
	YarnWeight string
	Gauge      GaugeRange

	// ToolSizes lists the recommended tool diameters in mm;
	// RecommendedTool is the middle of that list.
	ToolSizes       []float64
	RecommendedTool float64
}

// KnitGaugeForYarn returns the knitting gauge recommendation for a yarn
// weight. The second return value is false for an unknown weight.
func KnitGaugeForYarn(weight string) (GaugeRecommendation, bool) {
	return recommendation(weight, knitGaugeForYarn[weight], needleForYarn[weight])
}

// CrochetGaugeForYarn returns the crochet gauge recommendation for a yarn
// weight. The second return value is false for an unknown weight.
func CrochetGaugeForYarn(weight string) (GaugeRecommendation, bool) {
	return recommendation(weight, crochetGaugeForYarn[weight], hookForYarn[weight])
}

func recommendation(weight string, gauge GaugeRange, tools []float64) (GaugeRecommendation, bool) {
	if gauge == (GaugeRange{}) || len(tools) == 0 {
		return GaugeRecommendation{}, false
	}
	return GaugeRecommendation{
		YarnWeight:      weight,
		Gauge:           gauge,
		ToolSizes:       tools,
		RecommendedTool: tools[len(tools)/2],
	}, true
}

// ClosestNeedleSize snaps a needle diameter to the standard metric series.
func ClosestNeedleSize(mm float64) float64 {
	return ClosestToolSize(mm, NeedleSizes)
}

// ClosestHookSize snaps a hook diameter to the standard metric series.
func ClosestHookSize(mm float64) float64 {
	return ClosestToolSize(mm, HookSizes)
}

// NeedlesForYarn returns the recommended needle sizes for a yarn weight,
// or nil for an unknown weight.
func NeedlesForYarn(weight string) []float64 {
	return needleForYarn[weight]
}

// HooksForYarn returns the recommended hook sizes for a yarn weight,
// or nil for an unknown weight.
func HooksForYarn(weight string) []float64 {
	return hookForYarn[weight]
}

// IsStandardNeedle reports whether mm is a standard metric needle size.
func IsStandardNeedle(mm float64) bool { return contains(NeedleSizes, mm) }

// IsStandardHook reports whether mm is a standard metric hook size.
func IsStandardHook(mm float64) bool { return contains(HookSizes, mm) }

func contains(sizes []float64, mm float64) bool {
	for _, s := range sizes {
		if s == mm {
			return true
		}
	}
	return false
}
