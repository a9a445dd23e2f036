package classifier

import (
	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/blocks"
)

// tocLookaheadWindow is how many blocks after a candidate TOC heading are
// inspected for TOC items.
const tocLookaheadWindow = 5

// tocLookaheadMinItems is how many of those blocks must parse as TOC items
// for the heading to be accepted.
const tocLookaheadMinItems = 2

// LocateTocHeading scans forward for the first block whose entire text is a
// "table of contents" / "contents" heading, then validates it by requiring at
// least two of the next five blocks to parse as TOC items. A candidate that
// fails validation is treated as if it did not exist and the scan continues.
//
// Returns ErrNoTocFound when no candidate survives validation.
func LocateTocHeading(bs []blocks.Block) (int, error) {
	for _, b := range bs {
		if !IsTocHeading(b.Text) {
			continue
		}
		ok, err := lookaheadHasItems(bs, b.Index)
		if err != nil {
			return 0, err
		}
		if ok {
			return b.Index, nil
		}
	}
	return 0, ErrNoTocFound
}

// lookaheadHasItems checks the bounded window after a candidate heading.
func lookaheadHasItems(bs []blocks.Block, headingIndex int) (bool, error) {
	items := 0
	for i := headingIndex + 1; i < len(bs) && i <= headingIndex+tocLookaheadWindow; i++ {
		c, err := ClassifyBlock(bs[i].Index, bs[i].Text)
		if err != nil {
			return false, err
		}
		// Whole-block headings satisfy the item grammar as well.
		if c.Kind == KindTocItem || c.Kind == KindHeading {
			items++
		}
	}
	return items >= tocLookaheadMinItems, nil
}
