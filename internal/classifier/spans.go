package classifier

import (
	"fmt"

	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/blocks"
)

// assembleSpans turns matched heading positions into chapter spans, claims
// every block owned by the TOC or a chapter, and derives front and back
// matter from what remains.
//
// Chapter k spans from its heading block to the block before chapter k+1's
// heading; the last chapter extends to the final block. Unclaimed blocks
// strictly between the TOC and the first chapter are a non-fatal integrity
// signal, reported as a warning on the front matter that absorbs them.
func assembleSpans(bs []blocks.Block, entries []TocEntry, matches []int, tocHeadingIndex, tocEndBlock int) ([]Chapter, Matter, Matter) {
	claimed := make([]bool, len(bs))
	for i := tocHeadingIndex; i <= tocEndBlock; i++ {
		claimed[i] = true
	}

	chapters := make([]Chapter, 0, len(matches))
	for k, start := range matches {
		end := len(bs) - 1
		if k+1 < len(matches) {
			end = matches[k+1] - 1
		}

		paragraphs := make([]string, 0, end-start+1)
		for i := start; i <= end; i++ {
			claimed[i] = true
			paragraphs = append(paragraphs, bs[i].Text)
		}

		s, e := start, end
		entries[k].StartBlock = &s
		entries[k].EndBlock = &e

		chapters = append(chapters, Chapter{
			ChapterIndex: k,
			Title:        entries[k].Title,
			StartBlock:   start,
			EndBlock:     end,
			Paragraphs:   paragraphs,
		})
	}

	firstChapterStart := matches[0]
	lastChapterEnd := chapters[len(chapters)-1].EndBlock

	front := collectMatter(bs, claimed, 0, firstChapterStart-1)
	back := collectMatter(bs, claimed, lastChapterEnd+1, len(bs)-1)

	// Unclaimed blocks between the TOC and the first chapter are absorbed
	// into front matter but flagged: they may be chapter content the matcher
	// walked past.
	var gap []int
	for i := tocEndBlock + 1; i < firstChapterStart; i++ {
		if !claimed[i] {
			gap = append(gap, i)
		}
	}
	if len(gap) > 0 {
		front.Warnings = append(front.Warnings, fmt.Sprintf("unclaimed blocks: %v", gap))
	}

	return chapters, front, back
}

// collectMatter gathers the unclaimed blocks in [lo, hi] into a matter
// region.
func collectMatter(bs []blocks.Block, claimed []bool, lo, hi int) Matter {
	m := Matter{
		SpanBlocks: EmptySpan,
		Paragraphs: []string{},
		Warnings:   []string{},
	}

	for i := lo; i >= 0 && i <= hi && i < len(bs); i++ {
		if claimed[i] {
			continue
		}
		if m.SpanBlocks == EmptySpan {
			m.SpanBlocks = [2]int{i, i}
		} else {
			m.SpanBlocks[1] = i
		}
		m.Paragraphs = append(m.Paragraphs, bs[i].Text)
	}

	return m
}
