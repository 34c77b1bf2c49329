// Package slog provides logging decorators for showtimes services,
// built on the standard log/slog package.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/showtimes"
)

// Ensure LoggingFetcher implements showtimes.Fetcher.
var _ showtimes.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   showtimes.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next showtimes.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
// A missing page is logged separately from other failures.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		msg := "fetch"
		switch {
		case showtimes.ErrorCode(err) == showtimes.ENOTFOUND:
			level, msg = slog.LevelWarn, "fetch not found"
		case err != nil:
			level = slog.LevelError
		}
		f.logger.Log(ctx, level, msg,
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
