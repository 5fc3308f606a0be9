package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jmalczyk/dealerscout"
	main "github.com/jmalczyk/dealerscout/cmd/dealerscout"
	"github.com/jmalczyk/dealerscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("analyzes a website and prints the result", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Content = &mock.ContentExtractor{
			SiteTextFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://dealer.example.com", url)
				return "We offer in-house financing and a 30-day warranty.", nil
			},
		}
		m.Analyzer = &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, text string) (*dealerscout.SiteAnalysis, error) {
				assert.Contains(t, text, "in-house financing")
				a := &dealerscout.SiteAnalysis{
					FinancingOptions: []string{"In-house financing"},
					Policies:         []string{"30-day warranty"},
				}
				a.Normalize()
				return a, nil
			},
		}

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"analyze", "https://dealer.example.com"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Financing Solutions")
		assert.Contains(t, output, "- In-house financing")
		assert.Contains(t, output, "Customer Policies & Guarantees")
		assert.Contains(t, output, "- 30-day warranty")
	})

	t.Run("prints a placeholder when the site yields no content", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Content = &mock.ContentExtractor{
			SiteTextFn: func(_ context.Context, _ string) (string, error) {
				return "", nil
			},
		}
		m.Analyzer = &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, _ string) (*dealerscout.SiteAnalysis, error) {
				t.Error("analyzer should not be called without content")
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"analyze", "https://empty.example.com"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Could not analyze website content.")
	})

	t.Run("fails when the analysis service is unavailable", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Content = &mock.ContentExtractor{
			SiteTextFn: func(_ context.Context, _ string) (string, error) {
				return "some dealer content", nil
			},
		}
		m.Analyzer = &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, _ string) (*dealerscout.SiteAnalysis, error) {
				return nil, dealerscout.Errorf(dealerscout.EUNAVAILABLE, "analysis failed")
			},
		}

		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"analyze", "https://down.example.com"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, dealerscout.EUNAVAILABLE, dealerscout.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: analysis failed")
	})
}
