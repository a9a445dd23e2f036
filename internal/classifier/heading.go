package classifier

import (
	"regexp"
	"strconv"
	"strings"
)

// BlockKind tags the structural role a block can play.
type BlockKind int

const (
	// KindPlain is narrative text: neither a chapter heading nor a TOC item.
	KindPlain BlockKind = iota
	// KindHeading is a whole-block chapter heading (no trailing narrative).
	KindHeading
	// KindTocItem is a table-of-contents item line (possibly bulleted).
	KindTocItem
)

// Classification is the one-shot structural reading of a block. It is
// computed once per block and reused by the locator, the TOC parser, and the
// heading matcher so they never disagree about what a block looks like.
type Classification struct {
	Kind BlockKind
	// Title is the item text with any leading bullet stripped. Set for
	// KindHeading and KindTocItem.
	Title string
	// Ordinal is the parsed chapter number, when the label is "chapter <n>".
	Ordinal *int
}

// headingPattern matches a whole chapter heading line: a chapter/prologue/
// epilogue label, optionally followed by punctuation and a subtitle, with no
// trailing narrative text.
var headingPattern = regexp.MustCompile(`(?i)^(?:chapter\s+(\d+)|prologue|epilogue)(?:\s*[:.\-\x{2013}]\s*.*)?$`)

// tocItemPattern matches a TOC item: an optional bullet, then the same
// chapter/prologue/epilogue label grammar as headings. Bulleted lines are
// TOC items but never whole-block headings.
var tocItemPattern = regexp.MustCompile(`(?i)^(?:[-*\x{2022}\x{00b7}]\s*)?(?:chapter\s+(\d+)|prologue|epilogue)(?:\s*[:.\-\x{2013}]\s*.*)?$`)

// bulletPrefix strips a leading bullet from a TOC item line.
var bulletPrefix = regexp.MustCompile(`^[-*\x{2022}\x{00b7}]\s*`)

// tocHeadingPattern matches the TOC heading block itself.
var tocHeadingPattern = regexp.MustCompile(`(?i)^(?:table\s+of\s+contents|contents)\s*:?\s*$`)

// ClassifyBlock computes the structural reading of a single block.
//
// A block qualifies as a heading only when its entire trimmed content matches
// the heading grammar on one line. A block containing more than one
// heading-shaped line is invalid and aborts the run.
func ClassifyBlock(index int, text string) (Classification, error) {
	trimmed := strings.TrimSpace(text)

	headingLines := 0
	for _, line := range strings.Split(trimmed, "\n") {
		if headingPattern.MatchString(strings.TrimSpace(line)) {
			headingLines++
		}
	}
	if headingLines > 1 {
		return Classification{}, &MultipleHeadingsError{Block: index}
	}

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		return Classification{
			Kind:    KindHeading,
			Title:   trimmed,
			Ordinal: parseOrdinal(m[1]),
		}, nil
	}

	if m := tocItemPattern.FindStringSubmatch(trimmed); m != nil {
		return Classification{
			Kind:    KindTocItem,
			Title:   strings.TrimSpace(bulletPrefix.ReplaceAllString(trimmed, "")),
			Ordinal: parseOrdinal(m[1]),
		}, nil
	}

	return Classification{Kind: KindPlain}, nil
}

// IsTocHeading reports whether the block's entire text is a table-of-contents
// heading. Leading whitespace is tolerated, matching is case-insensitive.
func IsTocHeading(text string) bool {
	return tocHeadingPattern.MatchString(strings.TrimSpace(text))
}

func parseOrdinal(digits string) *int {
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}
