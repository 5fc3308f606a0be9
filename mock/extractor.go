package mock

import (
	"context"

	"github.com/jmalczyk/dealerscout"
)

var _ dealerscout.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of dealerscout.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ dealerscout.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of dealerscout.ContentExtractor.
type ContentExtractor struct {
	SiteTextFn func(ctx context.Context, url string) (string, error)
}

func (e *ContentExtractor) SiteText(ctx context.Context, url string) (string, error) {
	return e.SiteTextFn(ctx, url)
}
