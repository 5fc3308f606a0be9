// Package enrich turns discovered dealers into reports by extracting and
// analyzing their website content. Enrichment failures are always
// contained: a dealer with an unreachable or unanalyzable website still
// gets a report, just without an analysis.
package enrich

import (
	"context"
	"log/slog"

	"github.com/jmalczyk/dealerscout"
)

// Enricher analyzes dealer websites.
type Enricher struct {
	Content  dealerscout.ContentExtractor
	Analyzer dealerscout.Analyzer

	// Logger receives warnings when enrichment degrades. Nil disables
	// logging.
	Logger *slog.Logger
}

// NewEnricher creates an Enricher from its collaborators.
func NewEnricher(content dealerscout.ContentExtractor, analyzer dealerscout.Analyzer, logger *slog.Logger) *Enricher {
	return &Enricher{Content: content, Analyzer: analyzer, Logger: logger}
}

// Enrich builds the report for one dealer. It never fails: the returned
// report always carries the dealer, and Analysis is nil when the dealer
// has no website, the site yields no content, or the analysis call fails.
func (e *Enricher) Enrich(ctx context.Context, dealer *dealerscout.Dealer) *dealerscout.Report {
	report := &dealerscout.Report{Dealer: dealer}
	if dealer.Website == "" {
		return report
	}

	analysis, err := e.AnalyzeSite(ctx, dealer.Website)
	if err != nil {
		e.logWarn("website analysis failed", "dealer", dealer.Name, "website", dealer.Website, "err", err)
		return report
	}
	report.Analysis = analysis
	return report
}

// AnalyzeSite extracts and analyzes the page at url. A nil analysis with
// a nil error means the site yielded no content to analyze. Analysis
// errors (EUNAVAILABLE, EINVALID) are returned for the caller to treat as
// "analysis unavailable".
func (e *Enricher) AnalyzeSite(ctx context.Context, url string) (*dealerscout.SiteAnalysis, error) {
	text, err := e.Content.SiteText(ctx, url)
	if err != nil {
		return nil, err
	}
	if text == "" {
		e.logWarn("no content available", "website", url)
		return nil, nil
	}

	return e.Analyzer.Analyze(ctx, text)
}

func (e *Enricher) logWarn(msg string, args ...any) {
	if e.Logger != nil {
		e.Logger.Warn(msg, args...)
	}
}
