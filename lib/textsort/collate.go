package textsort

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The punctuation dropped before the lines are compared.
const ignoredPunct = "¿?¡!,."

// Line is one input line with its collation key.
type Line struct {
	Raw string
	Key string
}

// Collator computes the keys lines are ordered by.
// With folding on, the key drops the diacritics and the ignored
// punctuation, and it is case folded. Otherwise the key is the raw line.
type Collator struct {
	fold bool
}

func NewCollator(fold bool) *Collator {
	return &Collator{fold: fold}
}

// The transformers keep state, one chain per call.
func foldChain() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool {
			return strings.ContainsRune(ignoredPunct, r)
		})),
		norm.NFC,
		cases.Fold(),
	)
}

func (c *Collator) Key(raw string) string {
	if c == nil || !c.fold {
		return raw
	}
	key, _, err := transform.String(foldChain(), raw)
	if err != nil {
		// Invalid input is kept as is, it sorts by the raw bytes.
		return raw
	}
	return key
}

func (c *Collator) Line(raw string) Line {
	return Line{Raw: raw, Key: c.Key(raw)}
}

// CompareLines orders by the key, then by the raw line so the output is
// deterministic whatever the load order is.
func CompareLines(i, j Line) int {
	if res := strings.Compare(i.Key, j.Key); res != 0 {
		return res
	}
	return strings.Compare(i.Raw, j.Raw)
}
