package dealerscout

// Report pairs a dealer with the analysis of its website. Analysis is nil
// when the dealer has no website, the site yielded no content, or the
// analysis call failed; renderers must show the dealer's contact
// information regardless and note that the analysis is unavailable.
type Report struct {
	Dealer   *Dealer
	Analysis *SiteAnalysis
}
