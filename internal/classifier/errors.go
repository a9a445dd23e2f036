package classifier

import (
	"errors"
	"fmt"
)

// Fatal conditions. Any of these aborts the run; no partial artifacts are
// written. A single wrong chapter boundary silently corrupts all downstream
// segmentation, so failing loudly here is the cheaper option.
var (
	// ErrNoTocFound is returned when no table-of-contents heading passes the
	// lookahead validation.
	ErrNoTocFound = errors.New("no table of contents heading found")

	// ErrNoTocEntriesParsed is returned when a TOC heading was located but
	// zero items were accepted from the region that follows it.
	ErrNoTocEntriesParsed = errors.New("no TOC entries parsed")
)

// ChapterNotFoundError reports a TOC entry whose chapter heading never
// appears in the body.
type ChapterNotFoundError struct {
	Title string
}

func (e *ChapterNotFoundError) Error() string {
	return fmt.Sprintf("chapter heading not found for TOC entry %q", e.Title)
}

// MultipleHeadingsError reports a block containing more than one
// heading-shaped line.
type MultipleHeadingsError struct {
	Block int
}

func (e *MultipleHeadingsError) Error() string {
	return fmt.Sprintf("multiple chapter headings in block %d", e.Block)
}
