package showtimes

import (
	"context"
	"time"
)

// Report is the normalized listing for one query.
// Field order matches the serialized output.
type Report struct {
	Country Country   `json:"country"`
	Zip     string    `json:"zip"`
	Radius  Radius    `json:"radius"`
	Date    string    `json:"date"`
	Cinemas []*Cinema `json:"cinemas"`
}

// Cinema is one cinema entry with its movies in presentation order.
type Cinema struct {
	Name    string   `json:"name"`
	Movies  []*Movie `json:"movies"`
	Address string   `json:"address"`
	Phone   *string  `json:"phone"` // nil when the listing has no phone
}

// Movie is a film title and its showtimes for the queried date.
type Movie struct {
	Title     string   `json:"title"`
	Showtimes []string `json:"showtimes"`
}

// NewReport composes a report from the query and the extracted cinemas.
// Values are copied as-is.
func NewReport(q Query, cinemas []*Cinema) *Report {
	if cinemas == nil {
		cinemas = []*Cinema{}
	}
	return &Report{
		Country: q.Country,
		Zip:     q.Zip,
		Radius:  q.Radius,
		Date:    q.Date,
		Cinemas: cinemas,
	}
}

// ReportWriter persists a finished report.
type ReportWriter interface {
	WriteReport(ctx context.Context, report *Report) error
}

// ArchivedReport is a report stored together with its provenance.
type ArchivedReport struct {
	ID           string    `json:"id"`
	Report       *Report   `json:"report"`
	SourceURL    string    `json:"sourceUrl"`
	DocumentHash string    `json:"documentHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate returns an error if the archived report contains invalid fields.
func (a *ArchivedReport) Validate() error {
	if a.Report == nil {
		return Errorf(EINVALID, "archived report requires a report")
	}
	if a.Report.Country == "" {
		return Errorf(EINVALID, "archived report country required")
	}
	if a.Report.Date == "" {
		return Errorf(EINVALID, "archived report date required")
	}
	return nil
}

// ReportService represents a service for managing archived reports.
type ReportService interface {
	// CreateReport archives a report. ID, DocumentHash and CreatedAt are set
	// by the implementation.
	CreateReport(ctx context.Context, report *ArchivedReport, document string) error

	// FindReportByID retrieves an archived report by ID.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*ArchivedReport, error)

	// FindReports retrieves archived reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*ArchivedReport, error)

	// DeleteReport permanently removes an archived report.
	// Returns ENOTFOUND if the report does not exist.
	DeleteReport(ctx context.Context, id string) error
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	Country *Country `json:"country"`
	Zip     *string  `json:"zip"`
	Date    *string  `json:"date"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
