package main

import (
	"fmt"

	"github.com/fwojciec/showtimes"
	"github.com/fwojciec/showtimes/fs"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := showtimes.ReportFilter{Limit: c.Limit}
	if c.Country != "" {
		country := showtimes.Country(c.Country)
		filter.Country = &country
	}
	if c.Zip != "" {
		filter.Zip = &c.Zip
	}
	if c.Date != "" {
		filter.Date = &c.Date
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		return reportError(deps, err)
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived reports. Use 'showtimes fetch --archive' to store one.")
		return nil
	}

	for _, a := range reports {
		r := a.Report
		fmt.Fprintf(deps.Stdout, "%s  %s %s %s %dkm  %d cinemas  %s\n",
			a.ID, r.Country, r.Zip, r.Date, r.Radius, len(r.Cinemas),
			a.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	a, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
	if err != nil {
		return reportError(deps, err)
	}

	data, err := fs.FormatReport(a.Report)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Reports.DeleteReport(deps.Ctx, c.ID); err != nil {
		return reportError(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Deleted report %s\n", c.ID)
	return nil
}
