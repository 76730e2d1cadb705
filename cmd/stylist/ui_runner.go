package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"stylist/internal/driver"
	"stylist/internal/source"
	"stylist/internal/ui"
)

type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

type fixOutcome struct {
	fileSet *source.FileSet
	results []driver.FixFileResult
	err     error
}

func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.CheckFiles(ctx, files, optsCopy)
		outcomeCh <- checkOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}

func runFixWithUI(ctx context.Context, title string, files []string, opts driver.FixOptions) (*source.FileSet, []driver.FixFileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan fixOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.FixFiles(ctx, files, optsCopy)
		outcomeCh <- fixOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
