package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/artifacts"
	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/blocks"
	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/classifier"
	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/config"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <input> <output_dir>",
	Short: "Classify a blocks file into TOC, chapters, and front/back matter",
	Long: `Classify reads a block-structured input file (JSON Lines with one
{"index", "text"} record per line, or a JSON array of such records) and
writes four artifacts to the output directory:

  toc.json           parsed TOC entries and warnings
  chapters.json      ordered chapter spans with paragraph text
  front_matter.json  unclaimed blocks before the first chapter
  back_matter.json   unclaimed blocks after the last chapter

Raw unstructured text is rejected: paragraph splitting happens upstream and
is never re-derived here. On any fatal condition no artifacts are written
and the exit code is non-zero.

Examples:
  bookstruct classify book_blocks.jsonl out/
  bookstruct classify blocks.json /tmp/structure`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Fatal conditions produce a single message on stderr, not usage.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		logger := cfg.NewLogger().With("run_id", uuid.New().String())

		input, outputDir := args[0], args[1]

		bs, err := blocks.Load(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		logger.Info("loaded blocks", "input", input, "count", len(bs))

		res, err := classifier.Classify(bs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		logger.Info("classification complete",
			"toc_entries", len(res.Toc.Entries),
			"chapters", len(res.Chapters),
			"toc_span_start", res.TocSpan[0],
			"toc_span_end", res.TocSpan[1],
			"warnings", len(res.Toc.Warnings)+len(res.FrontMatter.Warnings)+len(res.BackMatter.Warnings))

		if err := artifacts.Write(res, outputDir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		logger.Info("artifacts written", "output_dir", outputDir)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
