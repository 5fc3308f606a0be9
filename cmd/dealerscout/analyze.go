package main

import (
	"fmt"

	"github.com/jmalczyk/dealerscout"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Enricher.AnalyzeSite(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dealerscout.ErrorMessage(err))
		return err
	}

	if analysis == nil {
		fmt.Fprintln(deps.Stdout, noAnalysisMessage)
		return nil
	}

	renderAnalysis(deps.Stdout, analysis)
	return nil
}
