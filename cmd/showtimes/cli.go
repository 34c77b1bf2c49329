package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/showtimes"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   showtimes.Fetcher
	Extractor showtimes.ListingExtractor
	Reports   showtimes.ReportService // nil unless the archive is open
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline steps to stderr"`

	Fetch   FetchCmd   `cmd:"" help:"Fetch a listings page and write the report"`
	Parse   ParseCmd   `cmd:"" help:"Extract a report from a saved listings page"`
	History HistoryCmd `cmd:"" help:"List archived reports"`
	Show    ShowCmd    `cmd:"" help:"Print an archived report"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an archived report"`
}

// QueryFlags are the lookup parameters shared by fetch and parse.
type QueryFlags struct {
	Country string `short:"C" required:"" enum:"AR,AU,CA,CL,DE,ES,FR,IT,MX,NZ,PT,UK,US" help:"Country code (${enum})"`
	Zip     string `short:"z" required:"" help:"Postal code"`
	Date    string `short:"d" help:"Date as YYYY-MM-DD (default: today)"`
	Radius  int    `short:"r" default:"10" help:"Radius in km: 5, 10, 20, 30 or 50"`
	Mode    string `short:"m" default:"24h" enum:"24h,carry" help:"Showtime notation: 24h or carry (keep am/pm)"`
}

// Query converts the flags into a showtimes.Query.
func (f QueryFlags) Query(now time.Time) showtimes.Query {
	date := f.Date
	if date == "" {
		date = now.Format(showtimes.DateLayout)
	}
	return showtimes.Query{
		Country: showtimes.Country(f.Country),
		Zip:     f.Zip,
		Radius:  showtimes.Radius(f.Radius),
		Date:    date,
		Mode:    showtimes.NormalizeMode(f.Mode),
	}
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	QueryFlags `embed:""`

	Out     string        `short:"o" default:"cinemaData.json" help:"Output file"`
	Browser bool          `short:"b" help:"Render the page with headless Chrome"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	BaseURL string        `name:"base-url" default:"https://www.imdb.com" help:"Listings site base URL"`
	Archive bool          `short:"a" help:"Also store the report in the archive database"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	QueryFlags `embed:""`

	File    string `arg:"" type:"existingfile" help:"Saved listings HTML file"`
	Out     string `short:"o" help:"Output file (default: stdout)"`
	Archive bool   `short:"a" help:"Also store the report in the archive database"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Country string `short:"C" help:"Only reports for this country"`
	Zip     string `short:"z" help:"Only reports for this postal code"`
	Date    string `short:"d" help:"Only reports for this date"`
	Limit   int    `short:"n" default:"20" help:"Maximum number of reports"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Archived report ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Archived report ID"`
}
