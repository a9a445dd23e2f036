package classifier

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// markStripper decomposes text (NFD) and drops combining marks, so that
// accented and unaccented spellings of a title compare equal.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Canon returns the canonical form of a title used for robust equality:
// decomposed Unicode with combining marks removed, lowercased, stripped of
// everything that is not a letter, digit, or space, with whitespace runs
// collapsed to single spaces and trimmed.
//
// Canon is idempotent: Canon(Canon(x)) == Canon(x).
func Canon(title string) string {
	stripped, _, err := transform.String(markStripper, title)
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the raw
		// input so canonicalization stays total.
		stripped = title
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
