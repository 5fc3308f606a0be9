package dealerscout

import "context"

// SiteAnalysis is the structured summary extracted from a dealer website.
// The JSON tags are the contract with the text-generation service: the
// instruction template asks for exactly these keys.
type SiteAnalysis struct {
	InventoryHighlights []string       `json:"inventory_highlights"`
	SpecialOffers       []string       `json:"special_offers"`
	FinancingOptions    []string       `json:"financing_options"`
	Services            []string       `json:"services"`
	CompanyBackground   string         `json:"company_background"`
	UniquePoints        []string       `json:"unique_points"`
	Policies            []string       `json:"policies"`
	ContactDetails      ContactDetails `json:"contact_details"`
	ManagementInfo      ManagementInfo `json:"management_info"`
}

// ContactDetails lists extra contact channels found on the website.
type ContactDetails struct {
	PhoneNumbers []string `json:"phone_numbers"`
	Emails       []string `json:"emails"`
	SocialMedia  []string `json:"social_media"`
	OtherContact []string `json:"other_contact"`
}

// ManagementInfo describes the people behind the dealership.
type ManagementInfo struct {
	Owner          string   `json:"owner"`
	Team           []string `json:"team"`
	Experience     string   `json:"experience"`
	Certifications []string `json:"certifications"`
}

// Normalize replaces nil list fields with empty slices so consumers never
// have to distinguish "absent" from "empty".
func (a *SiteAnalysis) Normalize() {
	for _, p := range []*[]string{
		&a.InventoryHighlights,
		&a.SpecialOffers,
		&a.FinancingOptions,
		&a.Services,
		&a.UniquePoints,
		&a.Policies,
		&a.ContactDetails.PhoneNumbers,
		&a.ContactDetails.Emails,
		&a.ContactDetails.SocialMedia,
		&a.ContactDetails.OtherContact,
		&a.ManagementInfo.Team,
		&a.ManagementInfo.Certifications,
	} {
		if *p == nil {
			*p = []string{}
		}
	}
}

// Empty reports whether the analysis contains no extracted information.
func (a *SiteAnalysis) Empty() bool {
	return len(a.InventoryHighlights) == 0 &&
		len(a.SpecialOffers) == 0 &&
		len(a.FinancingOptions) == 0 &&
		len(a.Services) == 0 &&
		a.CompanyBackground == "" &&
		len(a.UniquePoints) == 0 &&
		len(a.Policies) == 0 &&
		len(a.ContactDetails.PhoneNumbers) == 0 &&
		len(a.ContactDetails.Emails) == 0 &&
		len(a.ContactDetails.SocialMedia) == 0 &&
		len(a.ContactDetails.OtherContact) == 0 &&
		a.ManagementInfo.Owner == "" &&
		len(a.ManagementInfo.Team) == 0 &&
		a.ManagementInfo.Experience == "" &&
		len(a.ManagementInfo.Certifications) == 0
}

// Analyzer turns extracted website text into a structured analysis.
type Analyzer interface {
	// Analyze sends the text to the text-generation service and parses
	// the structured result. Returns EUNAVAILABLE when the service call
	// fails and EINVALID when the response does not match the expected
	// JSON shape. Both are recoverable: callers render the dealer
	// without an analysis.
	Analyze(ctx context.Context, text string) (*SiteAnalysis, error)
}
