// Package classifier recovers the logical structure of a book from its
// ordered block sequence: the table of contents, the chapters, and the front
// and back matter. The whole computation is pure and single-threaded over
// immutable input, so identical input always produces identical output and
// runs for independent books can proceed in parallel.
package classifier

import (
	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/blocks"
)

// Toc is the parsed table of contents with any warnings raised while
// parsing or matching it.
type Toc struct {
	Entries  []TocEntry `json:"entries"`
	Warnings []string   `json:"warnings"`
}

// Result holds the four structural artifacts of one classification run.
type Result struct {
	Toc         Toc
	Chapters    []Chapter
	FrontMatter Matter
	BackMatter  Matter

	// TocSpan is the inclusive block range the TOC region occupies,
	// heading included. Not serialized; used by consumers that need to
	// account for every block.
	TocSpan [2]int
}

// Classify runs the full structural recovery over a block sequence:
// locate the TOC heading, parse its items, match each entry's chapter
// heading in the body, and assemble spans.
//
// On any fatal condition the returned error is the only output; no partial
// result is produced.
func Classify(bs []blocks.Block) (*Result, error) {
	if len(bs) == 0 {
		return nil, &blocks.MalformedInputError{Reason: "input contains zero blocks"}
	}

	tocHeading, err := LocateTocHeading(bs)
	if err != nil {
		return nil, err
	}

	parsed, err := parseTocItems(bs, tocHeading)
	if err != nil {
		return nil, err
	}

	matched, err := matchHeadings(bs, parsed.Entries, parsed.EndBlock)
	if err != nil {
		return nil, err
	}

	chapters, front, back := assembleSpans(bs, parsed.Entries, matched.Matches, tocHeading, parsed.EndBlock)

	warnings := append([]string{}, parsed.Warnings...)
	warnings = append(warnings, matched.Warnings...)

	return &Result{
		Toc: Toc{
			Entries:  parsed.Entries,
			Warnings: warnings,
		},
		Chapters:    chapters,
		FrontMatter: front,
		BackMatter:  back,
		TocSpan:     [2]int{tocHeading, parsed.EndBlock},
	}, nil
}

// InspectToc runs only the TOC stages (locate and parse), for read-only
// inspection of an input. Returns the TOC heading block index, the parsed
// entries, the last TOC block index, and any parse warnings.
func InspectToc(bs []blocks.Block) (int, []TocEntry, int, []string, error) {
	if len(bs) == 0 {
		return 0, nil, 0, nil, &blocks.MalformedInputError{Reason: "input contains zero blocks"}
	}

	tocHeading, err := LocateTocHeading(bs)
	if err != nil {
		return 0, nil, 0, nil, err
	}

	parsed, err := parseTocItems(bs, tocHeading)
	if err != nil {
		return 0, nil, 0, nil, err
	}

	warnings := parsed.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return tocHeading, parsed.Entries, parsed.EndBlock, warnings, nil
}
