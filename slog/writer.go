package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/showtimes"
)

// Ensure LoggingReportWriter implements showtimes.ReportWriter.
var _ showtimes.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with logging.
type LoggingReportWriter struct {
	next   showtimes.ReportWriter
	name   string
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter. Name identifies
// the destination in log records, e.g. a file path.
func NewLoggingReportWriter(next showtimes.ReportWriter, name string, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, name: name, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the operation.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, report *showtimes.Report) (err error) {
	defer func(begin time.Time) {
		cinemas := 0
		if report != nil {
			cinemas = len(report.Cinemas)
		}
		w.logger.Info("write report",
			"dest", w.name,
			"cinemas", cinemas,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, report)
}
