package classifier

// TocEntry is one parsed table-of-contents entry. Title and Ordinal are
// fixed at parse time; StartBlock and EndBlock are written exactly once by
// the heading matcher and never mutated again.
type TocEntry struct {
	Order      int    `json:"order"`
	Title      string `json:"title"`
	Ordinal    *int   `json:"ordinal,omitempty"`
	StartBlock *int   `json:"start_block,omitempty"`
	EndBlock   *int   `json:"end_block,omitempty"`
}

// Chapter is a resolved chapter span. Paragraphs holds the text of every
// block in [StartBlock, EndBlock]; the heading block is always Paragraphs[0].
type Chapter struct {
	ChapterIndex int      `json:"chapter_index"`
	Title        string   `json:"title"`
	StartBlock   int      `json:"start_block"`
	EndBlock     int      `json:"end_block"`
	Paragraphs   []string `json:"paragraphs"`
}

// Matter is a front- or back-matter region: the unclaimed blocks before the
// first chapter or after the last one. Span is inclusive, or [-1,-1] when
// the region is empty.
type Matter struct {
	SpanBlocks [2]int   `json:"span_blocks"`
	Paragraphs []string `json:"paragraphs"`
	Warnings   []string `json:"warnings"`
}

// EmptySpan is the sentinel for an empty matter region.
var EmptySpan = [2]int{-1, -1}
