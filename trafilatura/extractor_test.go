package trafilatura_test

import (
	"testing"

	"github.com/jmalczyk/dealerscout"
	"github.com/jmalczyk/dealerscout/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements dealerscout.TextExtractor at compile time.
var _ dealerscout.TextExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content and drops navigation", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Valley Auto Sales</title></head>
<body>
<nav><a href="/">Home</a><a href="/inventory">Inventory</a></nav>
<main>
<h1>Welcome to Valley Auto Sales</h1>
<p>Family owned since 1985, we specialize in quality pre-owned trucks and SUVs.
Every vehicle passes a 120-point inspection before it reaches the lot, and our
finance team works with all credit situations.</p>
<p>Visit us at 9500 Liberia Ave or call (703) 555-0143 to schedule a test drive.</p>
</main>
<footer>Copyright 2024 Valley Auto Sales</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		text, err := ext.ExtractText(html)

		require.NoError(t, err)
		assert.Contains(t, text, "quality pre-owned trucks")
		assert.Contains(t, text, "120-point inspection")
	})

	t.Run("empty input yields no content", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		text, err := ext.ExtractText("")

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("whitespace-only input yields no content", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		text, err := ext.ExtractText("   \n\t  ")

		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
