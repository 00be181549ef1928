package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todoc/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter todoc.toml",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path, err := project.WriteStarter(dir)
		if err != nil {
			return err
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(os.Stderr, "wrote %s\n", path)
		}
		return nil
	},
}
