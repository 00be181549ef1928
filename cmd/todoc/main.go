package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"todoc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "todoc",
	Short: "Lua API documentation extractor",
	Long:  `todoc scans Lua sources and extracts function documentation from comment blocks`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against the stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
