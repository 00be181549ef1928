package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"todoc/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show todoc build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(versionFormat) {
		case "json":
			payload := versionPayload{
				Tool:      "todoc",
				Version:   version.Version,
				GitCommit: version.GitCommit,
				BuildDate: version.BuildDate,
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		case "pretty":
			fmt.Printf("todoc %s\n", version.Version)
			if version.GitCommit != "" {
				fmt.Printf("  commit: %s\n", version.GitCommit)
			}
			if version.BuildDate != "" {
				fmt.Printf("  built:  %s\n", version.BuildDate)
			}
			return nil
		default:
			return fmt.Errorf("unknown format: %s", versionFormat)
		}
	},
}
