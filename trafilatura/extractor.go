// Package trafilatura implements dealerscout.TextExtractor using
// go-trafilatura's readability-style extraction. This is the primary
// strategy: boilerplate and navigation are stripped, link text is kept,
// images and tables are dropped.
package trafilatura

import (
	"strings"

	"github.com/jmalczyk/dealerscout"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements dealerscout.TextExtractor at compile time.
var _ dealerscout.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract readable text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the readable text of the page. Pages that
// trafilatura cannot make sense of yield an empty string with a nil
// error so the caller can try the fallback strategy.
func (e *Extractor) ExtractText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeLinks:   true,
		ExcludeTables:  true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		// Extraction failure on a fetched page means "no content", not
		// a pipeline error.
		return "", nil
	}

	return strings.TrimSpace(result.ContentText), nil
}
