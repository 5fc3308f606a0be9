package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmalczyk/dealerscout"
)

// Ensure LoggingAnalyzer implements dealerscout.Analyzer.
var _ dealerscout.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   dealerscout.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next dealerscout.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, text string) (analysis *dealerscout.SiteAnalysis, err error) {
	defer func(begin time.Time) {
		a.logger.Info("analyze",
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, text)
}
