package classifier

import (
	"fmt"
	"strings"

	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/blocks"
)

// matchPass is one pure matching strategy applied to a single heading-shaped
// candidate. It returns whether the candidate satisfies the entry and, when
// it does, an optional warning describing the fallback that was used.
// Adding a future pass (spelled-out numerals, say) is a list append.
type matchPass func(entry TocEntry, candidate Classification, raw string, index int) (bool, string)

// matchPasses are tried in order against each candidate; the first pass to
// succeed wins the candidate.
var matchPasses = []matchPass{passExact, passCanonical, passOrdinal}

// passExact compares trimmed heading text to the trimmed entry title,
// case-sensitively.
func passExact(entry TocEntry, _ Classification, raw string, _ int) (bool, string) {
	return strings.TrimSpace(raw) == strings.TrimSpace(entry.Title), ""
}

// passCanonical compares canonical forms.
func passCanonical(entry TocEntry, candidate Classification, _ string, index int) (bool, string) {
	if Canon(candidate.Title) != Canon(entry.Title) {
		return false, ""
	}
	return true, fmt.Sprintf("title normalized match used for TOC entry '%s' matched at block %d", entry.Title, index)
}

// passOrdinal matches on chapter number alone, only when the entry carries
// one.
func passOrdinal(entry TocEntry, candidate Classification, _ string, index int) (bool, string) {
	if entry.Ordinal == nil || candidate.Ordinal == nil || *entry.Ordinal != *candidate.Ordinal {
		return false, ""
	}
	return true, fmt.Sprintf("ordinal fallback used for TOC entry '%s' (chapter %d) matched at block %d", entry.Title, *entry.Ordinal, index)
}

// matchResult records where each entry's chapter heading was found, in TOC
// order.
type matchResult struct {
	Matches  []int // heading block index per entry, parallel to entries
	Warnings []string
}

// matchHeadings locates each TOC entry's chapter heading in the body.
//
// The cursor starts just past the TOC region and advances to one block past
// each match, so chapters are discovered strictly in TOC order and the whole
// matching phase is a single forward sweep of the blocks. For each entry the
// scan visits heading-shaped blocks only, trying all three passes against
// one candidate before moving to the next.
func matchHeadings(bs []blocks.Block, entries []TocEntry, tocEndBlock int) (*matchResult, error) {
	res := &matchResult{Matches: make([]int, 0, len(entries))}
	cursor := tocEndBlock + 1

	for _, entry := range entries {
		matched := -1
	scan:
		for i := cursor; i < len(bs); i++ {
			c, err := ClassifyBlock(bs[i].Index, bs[i].Text)
			if err != nil {
				return nil, err
			}
			if c.Kind != KindHeading {
				continue
			}
			for _, pass := range matchPasses {
				ok, warning := pass(entry, c, bs[i].Text, i)
				if !ok {
					continue
				}
				if warning != "" {
					res.Warnings = append(res.Warnings, warning)
				}
				matched = i
				break scan
			}
		}
		if matched < 0 {
			return nil, &ChapterNotFoundError{Title: entry.Title}
		}
		res.Matches = append(res.Matches, matched)
		cursor = matched + 1
	}

	return res, nil
}
