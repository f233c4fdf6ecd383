// Package normalize canonicalizes operator-entered identifiers and labels.
// Lot numbers and product labels arrive from several entry points (keyboard,
// spreadsheet paste) with inconsistent accents, width, and case; the same
// physical lot must always map to the same stored key.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKD decomposition
// 3 Strip combining marks (Café -> Cafe)
// 4 Strip format chars ZWJ ZWNJ FEFF
// 5 Width fold fullwidth to ASCII
// 6 Collapse whitespace runs to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKD,
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars
			width.Fold,                         // map fullwidth forms to ASCII
			norm.NFC,
		)
	},
}

func fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

// LotNumber canonicalizes a lot number: folded, uppercased, no interior spaces
func LotNumber(s string) string {
	ns := fold(s)
	ns = strings.ReplaceAll(ns, " ", "")
	return strings.ToUpper(ns)
}

// Label canonicalizes a product label: folded and title-cased ("cafe torrefie" -> "Cafe Torrefie").
// A fresh Caser per call: cases.Caser is stateful and must not be shared
func Label(s string) string {
	ns := strings.ToLower(fold(s))
	return cases.Title(language.French).String(ns)
}

// Operator canonicalizes an operator or sonder identifier
func Operator(s string) string {
	return strings.ToLower(fold(s))
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims the ends
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
