package classifier

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/blocks"
)

// happyBook is the Scenario-A shaped fixture used across invariant tests.
func happyBook() []blocks.Block {
	return mkBlocks(
		"For the early risers.", // front matter
		"Table of Contents",
		"Chapter 1: Dawn",
		"Chapter 2: Dusk",
		"Chapter 1: Dawn", // body heading
		"The sun rose slowly over the ridge.",
		"Birds began to call.",
		"Chapter 2: Dusk", // body heading
		"The light thinned to amber.",
	)
}

func TestClassifyHappyPath(t *testing.T) {
	res, err := Classify(happyBook())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if len(res.Toc.Entries) != 2 {
		t.Fatalf("expected 2 TOC entries, got %d", len(res.Toc.Entries))
	}
	if len(res.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(res.Chapters))
	}
	if len(res.Toc.Warnings) != 0 || len(res.FrontMatter.Warnings) != 0 || len(res.BackMatter.Warnings) != 0 {
		t.Fatalf("expected zero warnings, got toc=%v front=%v back=%v",
			res.Toc.Warnings, res.FrontMatter.Warnings, res.BackMatter.Warnings)
	}

	ch1, ch2 := res.Chapters[0], res.Chapters[1]
	if ch1.StartBlock != 4 || ch1.EndBlock != 6 {
		t.Fatalf("chapter 1 span = [%d,%d], want [4,6]", ch1.StartBlock, ch1.EndBlock)
	}
	if ch2.StartBlock != 7 || ch2.EndBlock != 8 {
		t.Fatalf("chapter 2 span = [%d,%d], want [7,8]", ch2.StartBlock, ch2.EndBlock)
	}
	if ch1.EndBlock != ch2.StartBlock-1 {
		t.Fatalf("chapter 1 must end exactly one block before chapter 2's heading")
	}
	if ch1.Paragraphs[0] != "Chapter 1: Dawn" {
		t.Fatalf("heading block must be paragraphs[0], got %q", ch1.Paragraphs[0])
	}

	if res.FrontMatter.SpanBlocks != [2]int{0, 0} {
		t.Fatalf("front matter span = %v, want [0,0]", res.FrontMatter.SpanBlocks)
	}
	if len(res.FrontMatter.Paragraphs) != 1 || res.FrontMatter.Paragraphs[0] != "For the early risers." {
		t.Fatalf("front matter paragraphs = %v", res.FrontMatter.Paragraphs)
	}
	if res.BackMatter.SpanBlocks != EmptySpan {
		t.Fatalf("back matter span = %v, want sentinel %v", res.BackMatter.SpanBlocks, EmptySpan)
	}

	if res.TocSpan != [2]int{1, 3} {
		t.Fatalf("toc span = %v, want [1,3]", res.TocSpan)
	}
}

func TestClassifyEntrySpansWrittenOnce(t *testing.T) {
	res, err := Classify(happyBook())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	for i, e := range res.Toc.Entries {
		if e.StartBlock == nil || e.EndBlock == nil {
			t.Fatalf("entry %d has unresolved span: %+v", i, e)
		}
		if *e.StartBlock != res.Chapters[i].StartBlock || *e.EndBlock != res.Chapters[i].EndBlock {
			t.Fatalf("entry %d span [%d,%d] disagrees with chapter span [%d,%d]",
				i, *e.StartBlock, *e.EndBlock, res.Chapters[i].StartBlock, res.Chapters[i].EndBlock)
		}
	}
}

func TestClassifyCoverageInvariant(t *testing.T) {
	bs := happyBook()
	res, err := Classify(bs)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	// Every block must be covered exactly once by the TOC span, a chapter
	// span, or a matter span.
	coverage := make([]int, len(bs))
	mark := func(lo, hi int) {
		for i := lo; i >= 0 && i <= hi; i++ {
			coverage[i]++
		}
	}
	mark(res.TocSpan[0], res.TocSpan[1])
	for _, ch := range res.Chapters {
		mark(ch.StartBlock, ch.EndBlock)
	}
	if res.FrontMatter.SpanBlocks != EmptySpan {
		mark(res.FrontMatter.SpanBlocks[0], res.FrontMatter.SpanBlocks[1])
	}
	if res.BackMatter.SpanBlocks != EmptySpan {
		mark(res.BackMatter.SpanBlocks[0], res.BackMatter.SpanBlocks[1])
	}

	for i, c := range coverage {
		if c != 1 {
			t.Fatalf("block %d covered %d times, want exactly once", i, c)
		}
	}
}

func TestClassifyOrderInvariant(t *testing.T) {
	res, err := Classify(happyBook())
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	for i := 1; i < len(res.Chapters); i++ {
		prev, cur := res.Chapters[i-1], res.Chapters[i]
		if prev.StartBlock >= cur.StartBlock {
			t.Fatalf("chapters not ascending by start block: %d then %d", prev.StartBlock, cur.StartBlock)
		}
		if prev.EndBlock >= cur.StartBlock {
			t.Fatalf("chapter %d end %d overlaps chapter %d start %d", i-1, prev.EndBlock, i, cur.StartBlock)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first, err := Classify(happyBook())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := Classify(happyBook())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input produced different results:\n%+v\n%+v", first, second)
	}
}

func TestClassifyOrdinalFallbackScenario(t *testing.T) {
	bs := mkBlocks(
		"Table of Contents",
		"- Chapter 1: Dawn",
		"- Chapter 2: Dusk",
		"- Chapter 3: The Return",
		"Chapter 1: Dawn",
		"Morning text.",
		"Chapter 2: Dusk",
		"Evening text.",
		"Chapter 3", // bare ordinal heading
		"Return text.",
	)

	res, err := Classify(bs)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(res.Chapters) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(res.Chapters))
	}
	want := "ordinal fallback used for TOC entry 'Chapter 3: The Return' (chapter 3) matched at block 8"
	found := false
	for _, w := range res.Toc.Warnings {
		if w == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v, want to contain %q", res.Toc.Warnings, want)
	}
}

func TestClassifyMissingHeadingFatal(t *testing.T) {
	bs := mkBlocks(
		"Table of Contents",
		"Chapter 1: Dawn",
		"Chapter 5: Nowhere",
		"Chapter 1: Dawn",
		"Body text only; chapter five never arrives.",
	)

	_, err := Classify(bs)
	var nf *ChapterNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected ChapterHeadingNotFound, got %v", err)
	}
	if nf.Title != "Chapter 5: Nowhere" {
		t.Fatalf("error names %q, want 'Chapter 5: Nowhere'", nf.Title)
	}
}

func TestClassifyMultipleHeadingsFatal(t *testing.T) {
	bs := mkBlocks(
		"Table of Contents",
		"Chapter 6: Storm",
		"Chapter 7: Calm",
		"Chapter 6\nChapter 7",
		"Body.",
	)

	_, err := Classify(bs)
	var mh *MultipleHeadingsError
	if !errors.As(err, &mh) {
		t.Fatalf("expected MultipleHeadingsError, got %v", err)
	}
	if mh.Block != 3 {
		t.Fatalf("error names block %d, want 3", mh.Block)
	}
}

func TestClassifyNoTocFatal(t *testing.T) {
	bs := mkBlocks(
		"Just a story.",
		"It begins without ceremony.",
	)

	_, err := Classify(bs)
	if !errors.Is(err, ErrNoTocFound) {
		t.Fatalf("expected ErrNoTocFound, got %v", err)
	}
}

func TestClassifyZeroBlocksFatal(t *testing.T) {
	_, err := Classify(nil)
	var mi *blocks.MalformedInputError
	if !errors.As(err, &mi) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}
}

func TestClassifyUnclaimedGapWarning(t *testing.T) {
	bs := mkBlocks(
		"Table of Contents",
		"- Chapter 1: Dawn",
		"- Chapter 2: Dusk",
		"An orphaned note between the TOC and the first chapter.",
		"Chapter 1: Dawn",
		"Morning text.",
		"Chapter 2: Dusk",
		"Evening text.",
	)

	res, err := Classify(bs)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	want := "unclaimed blocks: [3]"
	if len(res.FrontMatter.Warnings) != 1 || res.FrontMatter.Warnings[0] != want {
		t.Fatalf("front matter warnings = %v, want [%q]", res.FrontMatter.Warnings, want)
	}
	if res.FrontMatter.SpanBlocks != [2]int{3, 3} {
		t.Fatalf("front matter span = %v, want [3,3]", res.FrontMatter.SpanBlocks)
	}
}

func TestInspectToc(t *testing.T) {
	heading, entries, endBlock, warnings, err := InspectToc(happyBook())
	if err != nil {
		t.Fatalf("InspectToc failed: %v", err)
	}
	if heading != 1 || endBlock != 3 {
		t.Fatalf("heading=%d end=%d, want 1 and 3", heading, endBlock)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}
