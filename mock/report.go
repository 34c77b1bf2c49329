package mock

import (
	"context"

	"github.com/fwojciec/showtimes"
)

var _ showtimes.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of showtimes.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *showtimes.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *showtimes.Report) error {
	return w.WriteReportFn(ctx, report)
}

var _ showtimes.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of showtimes.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *showtimes.ArchivedReport, document string) error
	FindReportByIDFn func(ctx context.Context, id string) (*showtimes.ArchivedReport, error)
	FindReportsFn    func(ctx context.Context, filter showtimes.ReportFilter) ([]*showtimes.ArchivedReport, error)
	DeleteReportFn   func(ctx context.Context, id string) error
}

func (s *ReportService) CreateReport(ctx context.Context, report *showtimes.ArchivedReport, document string) error {
	return s.CreateReportFn(ctx, report, document)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*showtimes.ArchivedReport, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter showtimes.ReportFilter) ([]*showtimes.ArchivedReport, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}
