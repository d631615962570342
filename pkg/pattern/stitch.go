package pattern

// Craft distinguishes the two stitch vocabularies.
type Craft string

const (
	CraftKnit    Craft = "knit"
	CraftCrochet Craft = "crochet"
)

// Valid reports whether c is a recognized craft.
func (c Craft) Valid() bool { return c == CraftKnit || c == CraftCrochet }

// Stitch is a semantic stitch token using standard pattern abbreviations.
// Knitting and crochet draw from separate vocabularies; a [Chart] only
// ever mixes tokens from the vocabulary of its craft.
type Stitch string

// Knitting stitches.
const (
	K     Stitch = "k"     // knit
	P     Stitch = "p"     // purl
	YO    Stitch = "yo"    // yarn over (increase)
	K2tog Stitch = "k2tog" // knit two together (decrease)
	SSK   Stitch = "ssk"   // slip, slip, knit (decrease)
	Sl1   Stitch = "sl1"   // slip one
	C4F   Stitch = "c4f"   // cable 4 front
	C4B   Stitch = "c4b"   // cable 4 back
	M1    Stitch = "m1"    // make one (increase)
)

// Crochet stitches.
const (
	Ch  Stitch = "ch"  // chain
	Sc  Stitch = "sc"  // single crochet
	Dc  Stitch = "dc"  // double crochet
	Hdc Stitch = "hdc" // half double crochet
	Tr  Stitch = "tr"  // treble crochet
	Sl  Stitch = "sl"  // slip stitch
	Inc Stitch = "inc" // increase
	Dec Stitch = "dec" // decrease
	Blo Stitch = "blo" // back loop only
	Flo Stitch = "flo" // front loop only
)

// knitVocab and crochetVocab are the craft vocabularies. Only these tokens
// may appear in a chart of the corresponding craft.
var (
	knitVocab    = []Stitch{K, P, YO, K2tog, SSK, Sl1, C4F, C4B, M1}
	crochetVocab = []Stitch{Ch, Sc, Dc, Hdc, Tr, Sl, Inc, Dec, Blo, Flo}
)

// Vocabulary returns the stitch tokens belonging to a craft.
func Vocabulary(c Craft) []Stitch {
	switch c {
	case CraftKnit:
		return knitVocab
	case CraftCrochet:
		return crochetVocab
	}
	return nil
}

// Mirror returns the wrong-side reading of a knitting stitch: knit and purl
// swap, everything else reads the same. Crochet stitches are unaffected.
func (s Stitch) Mirror() Stitch {
	switch s {
	case K:
		return P
	case P:
		return K
	}
	return s
}
