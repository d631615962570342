package recipe

import (
	"fmt"

	"github.com/stitchery/stitchery/pkg/pattern"
)

func staticInstructions(s string) func(Params) string {
	return func(Params) string { return s }
}

func init() {
	register(Recipe{
		Name:         "garter",
		DisplayName:  "Garter Pattern",
		Craft:        pattern.CraftKnit,
		Summary:      "Knit every row; dense ridged fabric",
		Instructions: staticInstructions("Knit every row."),
		Grid:         garterGrid,
		Chart:        garterChart,
	})
	register(Recipe{
		Name:         "stockinette",
		DisplayName:  "Stockinette Pattern",
		Craft:        pattern.CraftKnit,
		Summary:      "Smooth V-columns; knit RS, purl WS",
		Instructions: staticInstructions("RS rows: Knit all stitches. WS rows: Purl all stitches."),
		Grid:         stockinetteGrid,
		Chart:        stockinetteChart,
	})
	register(Recipe{
		Name:        "rib",
		DisplayName: "Rib Pattern",
		Craft:       pattern.CraftKnit,
		Summary:     "Stretchy vertical ribs of knit/purl blocks",
		Instructions: func(p Params) string {
			return fmt.Sprintf("K%d, p%d; repeat across every row.", p.RibWidth, p.RibWidth)
		},
		Grid:  ribGrid,
		Chart: ribChart,
	})
	register(Recipe{
		Name:         "seed",
		DisplayName:  "Seed Pattern",
		Craft:        pattern.CraftKnit,
		Summary:      "Single-stitch knit/purl alternation, offset per row",
		Instructions: staticInstructions("K1, p1 across; shift the alternation by one stitch each row."),
		Grid:         seedGrid,
		Chart:        seedChart,
	})
	register(Recipe{
		Name:        "moss",
		DisplayName: "Moss Pattern",
		Craft:       pattern.CraftKnit,
		Summary:     "Block alternation of knit and purl",
		Instructions: func(p Params) string {
			return fmt.Sprintf("Work k%d, p%d blocks; swap knits and purls every %d rows.", p.BlockSize, p.BlockSize, p.BlockSize)
		},
		Grid:  mossGrid,
		Chart: mossChart,
	})
	register(Recipe{
		Name:        "cable",
		DisplayName: "Cable Swatch",
		Craft:       pattern.CraftKnit,
		Summary:     "Cable panel on a reverse-stockinette ground",
		Instructions: func(p Params) string {
			return fmt.Sprintf("Cross the %d-stitch cable panel front every 8th row and back 4 rows later; purl the margins.", p.CableWidth)
		},
		Grid:  cableGrid,
		Chart: cableChart,
	})
	register(Recipe{
		Name:         "granny",
		DisplayName:  "Granny Square",
		Craft:        pattern.CraftCrochet,
		Summary:      "Concentric square rings worked from the center out",
		Instructions: staticInstructions("Work concentric rounds from the center; each round forms a square ring."),
		Grid:         grannyGrid,
	})
	register(Recipe{
		Name:         "granny-chart",
		DisplayName:  "Granny Square Chart",
		Craft:        pattern.CraftCrochet,
		Summary:      "Stitch-level granny square rounds",
		Instructions: staticInstructions("Ch 3, work 3 dc into a magic ring, ch 2; grow each round with dc groups and corner chain spaces."),
		Chart:        grannyChart,
	})
	register(Recipe{
		Name:         "single-crochet",
		DisplayName:  "Single Crochet Rectangle",
		Craft:        pattern.CraftCrochet,
		Summary:      "Plain single crochet worked flat",
		Instructions: staticInstructions("Chain the foundation, then work one sc into each stitch; ch 1 to turn."),
		Chart:        singleCrochetChart,
	})
	register(Recipe{
		Name:         "shell",
		DisplayName:  "Shell Pattern",
		Craft:        pattern.CraftCrochet,
		Summary:      "Fans of five dc alternating with sc rows",
		Instructions: staticInstructions("Work 5 dc into one stitch to form each shell; alternate with sc rows."),
		Chart:        shellChart,
	})
}
