// Package cleaning holds the header normalization, type coercion and
// date/time repair rules applied to every uploaded export before it is
// stored. All functions are lossy-but-safe: bad input degrades to a
// default value, it never aborts an import.
package cleaning

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Headers matching one of these patterns keep their dot in the
// canonical key ("INV. No", "Custom Payment Ref.").
var dottedHeaderMarkers = []string{"inv.no", "custom payment ref.", "custompaymentref."}

// NormalizeHeader reduces a spreadsheet header to its canonical lookup
// key: NFKC form, whitespace removed, everything but letters, digits
// and underscores removed (plus the dot for dotted headers), then
// lowercased. Both the expected mapping headers and the uploaded ones
// pass through here, so extra spaces or a different Unicode encoding
// of the same Thai text still match.
func NormalizeHeader(header string) string {
	keepDot := false
	lower := strings.ToLower(header)
	for _, marker := range dottedHeaderMarkers {
		if strings.Contains(lower, marker) {
			keepDot = true
			break
		}
	}

	var b strings.Builder
	for _, r := range norm.NFKC.String(header) {
		switch {
		case unicode.IsSpace(r):
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_':
			b.WriteRune(r)
		case r == '.' && keepDot:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
