package goquery_test

import (
	"testing"

	"github.com/jmalczyk/dealerscout"
	"github.com/jmalczyk/dealerscout/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements dealerscout.TextExtractor at compile time.
var _ dealerscout.TextExtractor = (*goquery.Extractor)(nil)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("joins text nodes with single spaces", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Valley Auto Sales</h1>
<p>Quality used cars.</p>
<div><span>Call</span> <span>(703) 555-0143</span></div>
</body></html>`

		ext := goquery.NewExtractor()
		text, err := ext.ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Valley Auto Sales Quality used cars. Call (703) 555-0143", text)
	})

	t.Run("strips script and style elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<style>body { color: red; }</style>
<script>window.track("pageview");</script>
</head><body>
<p>Financing available.</p>
<noscript>Please enable JavaScript.</noscript>
</body></html>`

		ext := goquery.NewExtractor()
		text, err := ext.ExtractText(html)

		require.NoError(t, err)
		assert.Equal(t, "Financing available.", text)
		assert.NotContains(t, text, "color: red")
		assert.NotContains(t, text, "pageview")
		assert.NotContains(t, text, "enable JavaScript")
	})

	t.Run("empty input yields no content", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor()
		text, err := ext.ExtractText("")

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("markup without text yields no content", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor()
		text, err := ext.ExtractText(`<html><body><img src="lot.jpg"></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
