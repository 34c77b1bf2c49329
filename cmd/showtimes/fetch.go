package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/showtimes"
	"github.com/fwojciec/showtimes/collect"
	"github.com/fwojciec/showtimes/fs"
	showslog "github.com/fwojciec/showtimes/slog"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	q := c.Query(time.Now())

	collector := &collect.Collector{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Writers: []showtimes.ReportWriter{
			showslog.NewLoggingReportWriter(fs.NewReportFile(c.Out), c.Out, deps.Logger),
		},
		BaseURL: c.BaseURL,
	}
	if c.Archive {
		collector.Archive = deps.Reports
	}

	result, err := collector.Collect(deps.Ctx, q)
	if err != nil {
		return printError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "%d cinemas written to %s\n", len(result.Report.Cinemas), c.Out)
	if result.ArchiveID != "" {
		fmt.Fprintf(deps.Stdout, "archived as %s\n", result.ArchiveID)
	}
	fmt.Fprintln(deps.Stdout, "done")
	return nil
}

// printError reports a failed pipeline run on stderr. A missing listings
// page prints the bare status message.
func printError(deps *Dependencies, err error) error {
	if showtimes.ErrorCode(err) == showtimes.ENOTFOUND {
		fmt.Fprintln(deps.Stderr, showtimes.ErrorMessage(err))
		return &ReportedError{Err: err}
	}
	return reportError(deps, err)
}
