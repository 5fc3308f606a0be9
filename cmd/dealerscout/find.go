package main

import (
	"fmt"
	"time"

	"github.com/jmalczyk/dealerscout"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	set, err := deps.Finder.Find(deps.Ctx, c.ZipCode)
	if err != nil {
		switch dealerscout.ErrorCode(err) {
		case dealerscout.EINVALID:
			fmt.Fprintln(deps.Stderr, "Please enter a valid 5-digit zip code.")
		case dealerscout.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "Could not find location for zip code %s\n", c.ZipCode)
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", dealerscout.ErrorMessage(err))
		}
		return err
	}

	if set.Len() == 0 {
		fmt.Fprintf(deps.Stdout, "No independent dealers found in zipcode %s. Try a different zip code.\n", c.ZipCode)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d independent dealer(s) in %s.\n\n", set.Len(), c.ZipCode)

	today := time.Now().Weekday()
	for _, dealer := range set.Dealers() {
		report := &dealerscout.Report{Dealer: dealer}
		if !c.NoAnalyze {
			report = deps.Enricher.Enrich(deps.Ctx, dealer)
		}
		renderReport(deps.Stdout, report, today, !c.NoAnalyze)
	}
	return nil
}
