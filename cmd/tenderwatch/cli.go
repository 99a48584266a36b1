package main

import (
	"context"
	"io"
	"time"

	"github.com/brunesco/tenderwatch"
	"github.com/brunesco/tenderwatch/crawl"
	"github.com/brunesco/tenderwatch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Sources  tenderwatch.SourceService
	Tenders  tenderwatch.TenderService
	Pipeline *crawl.Pipeline
	Seeds    []tenderwatch.Source
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan    ScanCmd    `cmd:"" help:"Scan the tender portals and store discovered records"`
	Tenders TendersCmd `cmd:"" help:"List stored tender records"`
	Sources SourcesCmd `cmd:"" help:"List registered seed sources"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Source  string        `short:"s" help:"Scan only the source with this name"`
	URL     []string      `short:"u" help:"Scan this listing URL instead of the built-in portals (repeatable)"`
	Delay   time.Duration `default:"1200ms" help:"Pause between detail-page requests"`
	Max     int           `default:"200" help:"Candidate link cap per source"`
	Verbose bool          `short:"v" help:"Log every request and store operation"`
}

// TendersCmd is the "tenders" subcommand.
type TendersCmd struct {
	Status string `help:"Filter by status (open, closed, published, unknown)"`
	Source string `help:"Filter by source ID"`
	Limit  int    `default:"50" help:"Maximum rows to display"`
	Offset int    `help:"Rows to skip"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}
