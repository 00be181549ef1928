package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todoc/internal/diagfmt"
	"todoc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lua",
	Short: "Tokenize a Lua source file",
	Long:  `Tokenize breaks down a Lua source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   true,
			ShowNotes: true,
		}
		if err := diagfmt.WritePretty(os.Stderr, result.FileSet, result.Bag, opts); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		return diagfmt.WriteTokensPretty(os.Stdout, result.FileSet, result.Tokens)
	case "json":
		return diagfmt.WriteTokensJSON(os.Stdout, result.FileSet, result.Tokens, true)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
