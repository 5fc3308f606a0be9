package main

import (
	"context"
	"io"

	"github.com/jmalczyk/dealerscout/enrich"
	"github.com/jmalczyk/dealerscout/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Finder   *search.Finder
	Enricher *enrich.Enricher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Find    FindCmd    `cmd:"" help:"Find independent used car dealers in a zip code"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a single dealer website"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	ZipCode   string `arg:"" help:"US 5-digit zip code"`
	NoAnalyze bool   `help:"Skip website analysis (listing info only)"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL string `arg:"" help:"Dealer website URL"`
}
