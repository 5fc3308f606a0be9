package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jmalczyk/dealerscout"
	"github.com/jmalczyk/dealerscout/enrich"
	"github.com/jmalczyk/dealerscout/extract"
	"github.com/jmalczyk/dealerscout/gemini"
	"github.com/jmalczyk/dealerscout/googlemaps"
	"github.com/jmalczyk/dealerscout/goquery"
	dshttp "github.com/jmalczyk/dealerscout/http"
	"github.com/jmalczyk/dealerscout/search"
	dsslog "github.com/jmalczyk/dealerscout/slog"
	"github.com/jmalczyk/dealerscout/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
	"googlemaps.github.io/maps"
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
	// Services for end-to-end testing. When nil, Run builds the real
	// clients from environment variables.
	Places   dealerscout.PlacesService
	Content  dealerscout.ContentExtractor
	Analyzer dealerscout.Analyzer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Optional: API keys can live in a .env file next to the binary.
	_ = godotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dealerscout"),
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
		return fmt.Errorf("no command specified. Run 'dealerscout --help' to see available commands")
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
	cmd = strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire command-specific dependencies based on command
	if cmd == "find" {
		places := m.Places
		if places == nil {
			apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GOOGLE_MAPS_API_KEY environment variable not set. Get an API key at https://console.cloud.google.com/")
				return dealerscout.Errorf(dealerscout.EINVALID, "GOOGLE_MAPS_API_KEY not set")
			}
			client, err := maps.NewClient(maps.WithAPIKey(apiKey))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GOOGLE_MAPS_API_KEY is valid")
				return fmt.Errorf("failed to create places client: %w", err)
			}
			places = googlemaps.NewService(client)
		}
		deps.Finder = search.NewFinder(dsslog.NewLoggingPlacesService(places, logger), logger)
	}

	if cmd == "analyze" || (cmd == "find" && !cli.Find.NoAnalyze) {
		content := m.Content
		if content == nil {
			fetcher := dsslog.NewLoggingFetcher(dshttp.NewFetcher(), logger)
			defer fetcher.Close()
			content = extract.NewExtractor(fetcher, trafilatura.NewExtractor(), goquery.NewExtractor())
		}

		analyzer := m.Analyzer
		if analyzer == nil {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return dealerscout.Errorf(dealerscout.EINVALID, "GEMINI_API_KEY not set")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			analyzer = gemini.NewAnalyzer(client)
		}

		deps.Enricher = enrich.NewEnricher(content, dsslog.NewLoggingAnalyzer(analyzer, logger), logger)
	}

	return kongCtx.Run(deps)
}
