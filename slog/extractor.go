package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/showtimes"
)

// Ensure LoggingExtractor implements showtimes.ListingExtractor.
var _ showtimes.ListingExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ListingExtractor with logging.
type LoggingExtractor struct {
	next   showtimes.ListingExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next showtimes.ListingExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome. A pass
// that consumed the whole listing without meeting the radius boundary is
// logged as a warning.
func (e *LoggingExtractor) Extract(html string, opts showtimes.ExtractOptions) (result *showtimes.ExtractResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract",
				"radius", int(opts.Radius),
				"code", showtimes.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Info("extract",
			"radius", int(opts.Radius),
			"cinemas", len(result.Cinemas),
			"stopped", result.Stopped,
			"boundary", result.Boundary,
			"duration", time.Since(begin),
		)
		if !result.Stopped {
			e.logger.Warn("radius boundary not found, listing consumed to the end",
				"pattern", opts.Radius.BoundaryPattern(),
			)
		}
	}(time.Now())
	return e.next.Extract(html, opts)
}
