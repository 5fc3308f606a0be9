// Package extract composes fetching and text extraction into the
// two-strategy content pipeline: a readability-style primary pass, then a
// raw fetch with script/style stripping when the primary pass yields
// nothing usable.
package extract

import (
	"context"

	"github.com/jmalczyk/dealerscout"
)

// Ensure Extractor implements dealerscout.ContentExtractor at compile time.
var _ dealerscout.ContentExtractor = (*Extractor)(nil)

// Extractor retrieves readable text for dealer website URLs.
type Extractor struct {
	Fetcher  dealerscout.Fetcher
	Primary  dealerscout.TextExtractor
	Fallback dealerscout.TextExtractor
}

// NewExtractor creates an Extractor from its three collaborators.
func NewExtractor(fetcher dealerscout.Fetcher, primary, fallback dealerscout.TextExtractor) *Extractor {
	return &Extractor{Fetcher: fetcher, Primary: primary, Fallback: fallback}
}

// SiteText returns the readable text of the page at url. Failures at any
// step degrade to an empty result rather than an error: "no content
// available" is an expected outcome for dealer sites behind bot walls,
// JavaScript storefronts, or dead domains. Callers treat an empty string
// as "skip analysis".
func (e *Extractor) SiteText(ctx context.Context, url string) (string, error) {
	html, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", nil
	}

	text, err := e.Primary.ExtractText(html)
	if err == nil && text != "" {
		return text, nil
	}

	// The fallback strategy starts from a fresh raw GET.
	html, err = e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", nil
	}

	text, err = e.Fallback.ExtractText(html)
	if err != nil {
		return "", nil
	}
	return text, nil
}
