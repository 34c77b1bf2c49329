package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/showtimes"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ showtimes.ReportService = (*ReportService)(nil)

// ReportService implements showtimes.ReportService using SQLite.
// The report itself is stored as JSON; the query fields are copied into
// columns so archived reports can be filtered.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// HashDocument returns the xxHash of a source document as 16 hex digits.
func HashDocument(document string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(document))
}

// CreateReport archives a report together with the hash of the document it
// was extracted from.
func (s *ReportService) CreateReport(ctx context.Context, a *showtimes.ArchivedReport, document string) error {
	if err := a.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(a.Report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	a.ID = uuid.New().String()
	a.DocumentHash = HashDocument(document)
	a.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, country, zip, radius, date, source_url, document_hash, cinema_count, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, string(a.Report.Country), a.Report.Zip, int(a.Report.Radius), a.Report.Date,
		a.SourceURL, a.DocumentHash, len(a.Report.Cinemas), string(body),
		a.CreatedAt.Format(time.RFC3339))

	return err
}

// FindReportByID retrieves an archived report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*showtimes.ArchivedReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, document_hash, body, created_at
		FROM reports
		WHERE id = ?
	`, id)

	a, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, showtimes.Errorf(showtimes.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindReports retrieves archived reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter showtimes.ReportFilter) ([]*showtimes.ArchivedReport, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, document_hash, body, created_at FROM reports WHERE 1=1")

	if filter.Country != nil {
		query.WriteString(" AND country = ?")
		args = append(args, string(*filter.Country))
	}
	if filter.Zip != nil {
		query.WriteString(" AND zip = ?")
		args = append(args, *filter.Zip)
	}
	if filter.Date != nil {
		query.WriteString(" AND date = ?")
		args = append(args, *filter.Date)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []*showtimes.ArchivedReport{}
	for rows.Next() {
		a, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, a)
	}

	return reports, rows.Err()
}

// DeleteReport permanently removes an archived report.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return showtimes.Errorf(showtimes.ENOTFOUND, "report not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*showtimes.ArchivedReport, error) {
	var a showtimes.ArchivedReport
	var body, createdAt string

	if err := row.Scan(&a.ID, &a.SourceURL, &a.DocumentHash, &body, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(body), &a.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", a.ID, err)
	}

	var err error
	a.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &a, nil
}
