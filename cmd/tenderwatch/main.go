package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/brunesco/tenderwatch"
	"github.com/brunesco/tenderwatch/crawl"
	"github.com/brunesco/tenderwatch/dateparse"
	"github.com/brunesco/tenderwatch/goquery"
	tenderhttp "github.com/brunesco/tenderwatch/http"
	tenderslog "github.com/brunesco/tenderwatch/slog"
	"github.com/brunesco/tenderwatch/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Seed sources scanned by default. Set before calling Run() to
	// override the built-in portal list.
	Seeds []tenderwatch.Source

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SourceService tenderwatch.SourceService
	TenderService tenderwatch.TenderService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Seeds:  DefaultSources(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Seeds:  m.Seeds,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tenderwatch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tenderwatch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TENDERWATCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SourceService = sqlite.NewSourceService(m.DB)
	m.TenderService = sqlite.NewTenderService(m.DB)
	deps.DB = m.DB
	deps.Sources = m.SourceService
	deps.Tenders = m.TenderService

	// Wire the scan pipeline only when scanning
	if cmd == "scan" {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if cli.Scan.Verbose {
			logger = slog.New(slog.NewTextHandler(stderr, nil))
		}

		var fetcher tenderwatch.Fetcher = tenderhttp.NewFetcher()
		tenders := deps.Tenders
		if cli.Scan.Verbose {
			fetcher = tenderslog.NewLoggingFetcher(fetcher, logger)
			tenders = tenderslog.NewLoggingTenderService(tenders, logger)
		}
		defer fetcher.Close()

		deps.Pipeline = &crawl.Pipeline{
			Fetcher:    fetcher,
			Discoverer: goquery.NewDiscoverer(goquery.WithMaxCandidates(cli.Scan.Max)),
			Extractor:  goquery.NewExtractor(dateparse.NewExtractor()),
			Sources:    deps.Sources,
			Tenders:    tenders,
			Pacer:      crawl.NewPacer(cli.Scan.Delay),
			Logger:     logger,
		}

		return kongCtx.Run(deps)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("TENDERWATCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tenderwatch.db"
	}
	dir := filepath.Join(home, ".tenderwatch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tenderwatch.db")
}

// formatDate renders an ISO date for table output, or a dash when absent.
func formatDate(date string) string {
	if date == "" {
		return "-"
	}
	return date
}

// formatTime renders a stored timestamp for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
