package classifier

import (
	"fmt"

	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/blocks"
)

// tocParseResult carries the outcome of the TOC item scan.
type tocParseResult struct {
	Entries  []TocEntry
	EndBlock int // index of the last block that contributed an accepted item
	Warnings []string
}

// parseTocItems scans forward from the block after the TOC heading,
// accepting item lines until a stop condition fires.
//
// Stop conditions apply only once two items have been accepted, and are
// checked in strict priority order per candidate block:
//
//  1. whole-block chapter heading: the expected terminator, never consumed;
//  2. duplicate canonical title: stop with a warning;
//  3. ordinal reused with a different canonical title: stop, keep the first
//     occurrence, warn;
//  4. block does not parse as a TOC item at all.
//
// The heading-shape check runs first so that the body's first chapter
// heading, which usually repeats a TOC title, terminates the scan cleanly
// instead of masquerading as a duplicate-title stop. Before the two-item
// threshold a duplicate is skipped with a warning rather than stopping, and
// non-item blocks are skipped silently.
func parseTocItems(bs []blocks.Block, tocHeadingIndex int) (*tocParseResult, error) {
	res := &tocParseResult{EndBlock: tocHeadingIndex}
	seenTitles := make(map[string]bool)
	seenOrdinals := make(map[int]string)

	for j := tocHeadingIndex + 1; j < len(bs); j++ {
		c, err := ClassifyBlock(bs[j].Index, bs[j].Text)
		if err != nil {
			return nil, err
		}
		isItem := c.Kind == KindTocItem || c.Kind == KindHeading
		key := Canon(c.Title)

		if len(res.Entries) >= tocLookaheadMinItems {
			if c.Kind == KindHeading {
				break
			}
			if isItem && seenTitles[key] {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("TOC ended on duplicate title: '%s' (block %d)", c.Title, j))
				break
			}
			if isItem && c.Ordinal != nil {
				if first, ok := seenOrdinals[*c.Ordinal]; ok && first != key {
					res.Warnings = append(res.Warnings,
						fmt.Sprintf("ordinal conflict in TOC at block %d: chapter %d titles differ; keeping first", j, *c.Ordinal))
					break
				}
			}
			if !isItem {
				break
			}
		} else {
			if !isItem {
				continue
			}
			if seenTitles[key] {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("duplicate TOC item skipped: '%s' (block %d)", c.Title, j))
				continue
			}
		}

		res.Entries = append(res.Entries, TocEntry{
			Order:   len(res.Entries),
			Title:   c.Title,
			Ordinal: c.Ordinal,
		})
		seenTitles[key] = true
		if c.Ordinal != nil {
			if _, ok := seenOrdinals[*c.Ordinal]; !ok {
				seenOrdinals[*c.Ordinal] = key
			}
		}
		res.EndBlock = j
	}

	if len(res.Entries) == 0 {
		return nil, ErrNoTocEntriesParsed
	}
	return res, nil
}
