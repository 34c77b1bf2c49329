package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/showtimes"
	"github.com/fwojciec/showtimes/goquery"
	showhttp "github.com/fwojciec/showtimes/http"
	"github.com/fwojciec/showtimes/rod"
	showslog "github.com/fwojciec/showtimes/slog"
	"github.com/fwojciec/showtimes/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var reported *ReportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// ReportedError marks a command error whose message was already written to
// stderr.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// reportError writes the user-facing message for err to stderr and marks
// err as reported.
func reportError(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", showtimes.ErrorMessage(err))
	return &ReportedError{Err: err}
}

// Main represents the program.
type Main struct {
	// Archive database path. Set before calling Run().
	DBPath string

	// SQLite database, opened only by commands that use the archive.
	DB *sqlite.DB

	// Fetcher replaces the HTTP or browser fetcher when set.
	Fetcher showtimes.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("showtimes"),
		kong.Description("Extract cinema showtime listings for a postal code and date"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'showtimes --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Extractor = showslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger)

	needsArchive := cmd == "history" || cmd == "show" || cmd == "delete" ||
		(cmd == "fetch" && cli.Fetch.Archive) ||
		(cmd == "parse" && cli.Parse.Archive)
	if needsArchive {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SHOWTIMES_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Reports = sqlite.NewReportService(m.DB)
	}

	if cmd == "fetch" {
		fetcher, err := m.newFetcher(cli.Fetch)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		deps.Fetcher = showslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func (m *Main) newFetcher(c FetchCmd) (showtimes.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if c.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(c.Timeout),
			rod.WithWaitSelector(goquery.DefaultSelectors.Root),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return f, nil
	}
	return showhttp.NewFetcher(showhttp.WithTimeout(c.Timeout)), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("SHOWTIMES_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "showtimes.db"
	}
	dir := filepath.Join(home, ".showtimes")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "showtimes.db")
}
