// Package goquery implements dealerscout.TextExtractor by stripping
// script and style elements from the parsed document and concatenating
// the remaining text nodes. This is the fallback strategy for pages the
// readability-style extractor can't handle (heavy templating, sparse
// markup, single-page storefronts).
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jmalczyk/dealerscout"
	"golang.org/x/net/html"
)

// Ensure Extractor implements dealerscout.TextExtractor at compile time.
var _ dealerscout.TextExtractor = (*Extractor)(nil)

// Extractor extracts raw text from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText strips script, style, and noscript elements and joins the
// trimmed text nodes of the remaining document with single spaces.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", dealerscout.Errorf(dealerscout.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	var parts []string
	for _, node := range doc.Selection.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " "), nil
}

// collectText appends the trimmed content of every non-empty text node
// under n to parts, in document order.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
