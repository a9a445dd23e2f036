// Package artifacts serializes classification results into the four output
// files consumed downstream. Field order is fixed by struct order, spans are
// zero-based and inclusive, collections never serialize as null, and empty
// spans use the [-1,-1] sentinel, so identical results always produce
// byte-identical files.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/classifier"
)

// Artifact file names, one per structural output.
const (
	TocFile         = "toc.json"
	ChaptersFile    = "chapters.json"
	FrontMatterFile = "front_matter.json"
	BackMatterFile  = "back_matter.json"
)

// tocArtifact is the serialized form of the TOC result.
type tocArtifact struct {
	Entries  []classifier.TocEntry `json:"entries"`
	Warnings []string              `json:"warnings"`
}

// chaptersArtifact is the serialized chapter list. This file is the sole
// contract consumed by dialogue segmentation and speaker attribution.
type chaptersArtifact struct {
	Chapters []classifier.Chapter `json:"chapters"`
}

// Write serializes the result into outputDir, creating the directory if
// absent. All four artifacts are marshaled before any file is written, so a
// failure never leaves a partial set behind.
func Write(res *classifier.Result, outputDir string) error {
	files := []struct {
		name string
		data any
	}{
		{TocFile, tocArtifact{
			Entries:  nonNilEntries(res.Toc.Entries),
			Warnings: nonNilStrings(res.Toc.Warnings),
		}},
		{ChaptersFile, chaptersArtifact{
			Chapters: nonNilChapters(res.Chapters),
		}},
		{FrontMatterFile, matterArtifact(res.FrontMatter)},
		{BackMatterFile, matterArtifact(res.BackMatter)},
	}

	encoded := make([][]byte, len(files))
	for i, f := range files {
		data, err := json.MarshalIndent(f.data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", f.name, err)
		}
		encoded[i] = append(data, '\n')
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, f := range files {
		path := filepath.Join(outputDir, f.name)
		if err := os.WriteFile(path, encoded[i], 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	return nil
}

// matterArtifact normalizes a matter region for serialization.
func matterArtifact(m classifier.Matter) classifier.Matter {
	m.Paragraphs = nonNilStrings(m.Paragraphs)
	m.Warnings = nonNilStrings(m.Warnings)
	return m
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilEntries(s []classifier.TocEntry) []classifier.TocEntry {
	if s == nil {
		return []classifier.TocEntry{}
	}
	return s
}

func nonNilChapters(s []classifier.Chapter) []classifier.Chapter {
	if s == nil {
		return []classifier.Chapter{}
	}
	return s
}
