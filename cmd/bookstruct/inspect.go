package main

import (
	"github.com/spf13/cobra"

	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/api"
	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/blocks"
	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/classifier"
)

// inspectSummary is the read-only structural summary printed by inspect.
type inspectSummary struct {
	Input       string                `json:"input" yaml:"input"`
	Blocks      int                   `json:"blocks" yaml:"blocks"`
	TocHeading  int                   `json:"toc_heading_block" yaml:"toc_heading_block"`
	TocEnd      int                   `json:"toc_end_block" yaml:"toc_end_block"`
	Entries     []classifier.TocEntry `json:"entries" yaml:"entries"`
	TocWarnings []string              `json:"toc_warnings" yaml:"toc_warnings"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Print a structural summary of a blocks file without writing artifacts",
	Long: `Inspect locates the table of contents in a blocks file and prints the
parsed entries to stdout. Nothing is written to disk; the full chapter match
is not performed.

Examples:
  bookstruct inspect book_blocks.jsonl
  bookstruct inspect -o json book_blocks.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		bs, err := blocks.Load(args[0])
		if err != nil {
			return err
		}

		heading, entries, endBlock, warnings, err := classifier.InspectToc(bs)
		if err != nil {
			return err
		}

		return api.Output(inspectSummary{
			Input:       args[0],
			Blocks:      len(bs),
			TocHeading:  heading,
			TocEnd:      endBlock,
			Entries:     entries,
			TocWarnings: warnings,
		})
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
