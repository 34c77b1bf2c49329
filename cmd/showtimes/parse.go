package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/showtimes"
	"github.com/fwojciec/showtimes/collect"
	"github.com/fwojciec/showtimes/fs"
	showslog "github.com/fwojciec/showtimes/slog"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %s: %s\n", c.File, err)
		return &ReportedError{Err: err}
	}

	var writer showtimes.ReportWriter = fs.NewStreamWriter(deps.Stdout)
	dest := "stdout"
	if c.Out != "" {
		writer = fs.NewReportFile(c.Out)
		dest = c.Out
	}

	collector := &collect.Collector{
		Extractor: deps.Extractor,
		Writers:   []showtimes.ReportWriter{showslog.NewLoggingReportWriter(writer, dest, deps.Logger)},
	}
	if c.Archive {
		collector.Archive = deps.Reports
	}

	result, err := collector.CollectHTML(deps.Ctx, c.Query(time.Now()), string(data))
	if err != nil {
		return printError(deps, err)
	}

	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "%d cinemas written to %s\n", len(result.Report.Cinemas), c.Out)
	}
	if result.ArchiveID != "" {
		fmt.Fprintf(deps.Stderr, "archived as %s\n", result.ArchiveID)
	}
	return nil
}
