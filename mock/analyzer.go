package mock

import (
	"context"

	"github.com/jmalczyk/dealerscout"
)

var _ dealerscout.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of dealerscout.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, text string) (*dealerscout.SiteAnalysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*dealerscout.SiteAnalysis, error) {
	return a.AnalyzeFn(ctx, text)
}
