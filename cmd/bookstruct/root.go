package main

import (
	"github.com/spf13/cobra"

	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/api"
	"github.com/jwardwell7077/agent-audiobook-maker-sub000/internal/config"
	"github.com/jwardwell7077/agent-audiobook-maker-sub000/version"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "bookstruct",
	Short: "Deterministic book structure classifier",
	Long: `Bookstruct recovers the logical structure of a book from its
block-structured text: front matter, table of contents, chapters, and back
matter.

It reconciles the human-authored TOC against the chapter headings that appear
in the body via a three-pass matcher (exact, normalized, ordinal). The
computation is fully offline and deterministic: identical input always
produces byte-identical artifacts.`,
	Version: version.GitRelease,
}

// resolveOutputFormat picks the CLI output format. An explicit -o flag wins;
// otherwise the config file's output.format applies.
func resolveOutputFormat(flagChanged bool, flagValue string) string {
	if flagChanged {
		return flagValue
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return flagValue
	}
	return cfg.Output.Format
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./bookstruct.yaml or ~/.bookstruct/bookstruct.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(resolveOutputFormat(cmd.Flags().Changed("output"), outputFormat))
	}

	rootCmd.AddCommand(versionCmd)
}
