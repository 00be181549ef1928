package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todoc/internal/driver"
	"todoc/internal/source"
	"todoc/internal/ui"
)

type extractOutcome struct {
	fileSet *source.FileSet
	results []*driver.FileResult
	err     error
}

// runExtraction dispatches to the plain or Bubble Tea path. The UI path
// runs extraction in a goroutine and feeds progress events through a
// buffered channel; closing the channel is what ends the program.
func runExtraction(cmd *cobra.Command, files []string, opts driver.Options, withUI bool) (*source.FileSet, []*driver.FileResult, error) {
	if !withUI || !isTerminal(os.Stdout) {
		return driver.ExtractPaths(cmd.Context(), files, opts)
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan extractOutcome, 1)

	go func() {
		uiOpts := opts
		uiOpts.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ExtractPaths(cmd.Context(), files, uiOpts)
		outcomeCh <- extractOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("extracting documentation", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
