// Package fs provides file-based report output.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/showtimes"
)

// FormatReport renders a report as JSON indented with two spaces,
// terminated by a newline.
func FormatReport(report *showtimes.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ensure ReportFile implements showtimes.ReportWriter at compile time.
var _ showtimes.ReportWriter = (*ReportFile)(nil)

// ReportFile writes a report to a JSON file with atomic semantics.
// The report is written to path.tmp and renamed to path once complete,
// so a failed write never leaves a partial file at path.
type ReportFile struct {
	path string
}

// NewReportFile creates a new ReportFile writing to path.
func NewReportFile(path string) *ReportFile {
	return &ReportFile{path: path}
}

// Path returns the final file path.
func (f *ReportFile) Path() string {
	return f.path
}

func (f *ReportFile) tempPath() string {
	return f.path + ".tmp"
}

// WriteReport writes the report to disk, replacing any existing file.
func (f *ReportFile) WriteReport(ctx context.Context, report *showtimes.Report) error {
	if report == nil {
		return showtimes.Errorf(showtimes.EINVALID, "report required")
	}

	data, err := FormatReport(report)
	if err != nil {
		return err
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(f.tempPath(), data, 0644); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(f.tempPath(), f.path); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}

	return nil
}

// Ensure StreamWriter implements showtimes.ReportWriter at compile time.
var _ showtimes.ReportWriter = (*StreamWriter)(nil)

// StreamWriter writes formatted reports to an io.Writer such as stdout.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter creates a new StreamWriter.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteReport writes the formatted report to the underlying writer.
func (s *StreamWriter) WriteReport(ctx context.Context, report *showtimes.Report) error {
	if report == nil {
		return showtimes.Errorf(showtimes.EINVALID, "report required")
	}

	data, err := FormatReport(report)
	if err != nil {
		return err
	}
	_, err = s.w.Write(data)
	return err
}
