// Package collect runs the listings pipeline for one query: fetch the page,
// extract the cinemas, assemble the report and hand it to the configured
// writers.
package collect

import (
	"context"
	"fmt"

	"github.com/fwojciec/showtimes"
)

// Collector orchestrates a single listings lookup.
type Collector struct {
	Fetcher   showtimes.Fetcher
	Extractor showtimes.ListingExtractor

	// Writers receive the finished report in order. None is called when
	// fetching or extraction fails.
	Writers []showtimes.ReportWriter

	// Archive, when set, stores the report with its source document hash
	// after all writers succeed.
	Archive showtimes.ReportService

	// BaseURL overrides showtimes.DefaultBaseURL.
	BaseURL string
}

// Result holds the outcome of a collection.
type Result struct {
	Report    *showtimes.Report
	SourceURL string
	Stopped   bool
	Boundary  string
	ArchiveID string
}

// Collect fetches the listings page for q and runs the pipeline on it.
// Fetch errors are wrapped, so ErrorCode still reports ENOTFOUND for a
// missing page.
func (c *Collector) Collect(ctx context.Context, q showtimes.Query) (*Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	url := q.URL(c.BaseURL)
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	return c.process(ctx, q, url, html)
}

// CollectHTML runs the pipeline on an already-loaded listings page.
func (c *Collector) CollectHTML(ctx context.Context, q showtimes.Query, html string) (*Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return c.process(ctx, q, "", html)
}

func (c *Collector) process(ctx context.Context, q showtimes.Query, sourceURL, html string) (*Result, error) {
	extracted, err := c.Extractor.Extract(html, showtimes.ExtractOptions{Radius: q.Radius, Mode: q.Mode})
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	result := &Result{
		Report:    showtimes.NewReport(q, extracted.Cinemas),
		SourceURL: sourceURL,
		Stopped:   extracted.Stopped,
		Boundary:  extracted.Boundary,
	}

	for _, w := range c.Writers {
		if err := w.WriteReport(ctx, result.Report); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
	}

	if c.Archive != nil {
		archived := &showtimes.ArchivedReport{Report: result.Report, SourceURL: sourceURL}
		if err := c.Archive.CreateReport(ctx, archived, html); err != nil {
			return nil, fmt.Errorf("archive report: %w", err)
		}
		result.ArchiveID = archived.ID
	}

	return result, nil
}
