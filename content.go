package dealerscout

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch downloads the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// TextExtractor turns raw HTML into best-effort readable text.
type TextExtractor interface {
	// ExtractText returns the readable text of the page. An empty string
	// with a nil error means the page yielded no usable text; that is
	// not a failure.
	ExtractText(html string) (string, error)
}

// ContentExtractor retrieves readable text for a URL, combining fetching
// and extraction with a fallback strategy.
type ContentExtractor interface {
	// SiteText returns the readable text of the page at url. An empty
	// string with a nil error means no content is available from any
	// strategy; callers skip analysis and continue.
	SiteText(ctx context.Context, url string) (string, error)
}
