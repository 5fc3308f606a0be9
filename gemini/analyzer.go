// Package gemini implements dealerscout.Analyzer using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmalczyk/dealerscout"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxContentChars bounds how much page text is embedded in the prompt.
const maxContentChars = 4000

// maxOutputTokens caps the size of the generated analysis.
const maxOutputTokens = 2000

// Ensure Analyzer implements dealerscout.Analyzer at compile time.
var _ dealerscout.Analyzer = (*Analyzer)(nil)

// Analyzer implements dealerscout.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze sends extracted website text to Gemini and parses the
// structured result. Returns EUNAVAILABLE when the service call fails and
// EINVALID when the response is not the expected JSON shape.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*dealerscout.SiteAnalysis, error) {
	if text == "" {
		return nil, dealerscout.Errorf(dealerscout.EINVALID, "website text required")
	}

	prompt := BuildPrompt(text)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, dealerscout.Errorf(dealerscout.EUNAVAILABLE, "text generation failed: %v", err)
	}
	if result == nil {
		return nil, dealerscout.Errorf(dealerscout.EINTERNAL, "gemini returned nil result")
	}

	return ParseAnalysis(result.Text())
}

// ParseAnalysis parses a raw model response strictly as a SiteAnalysis
// JSON object. List fields absent from the response come back empty, not
// nil. Returns EINVALID when the response is not a JSON object of the
// expected shape.
func ParseAnalysis(raw string) (*dealerscout.SiteAnalysis, error) {
	var analysis dealerscout.SiteAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, dealerscout.Errorf(dealerscout.EINVALID, "malformed analysis response: %v", err)
	}
	analysis.Normalize()
	return &analysis, nil
}

// BuildConfig returns the GenerateContentConfig for analysis calls. The
// temperature and output ceiling are fixed; they are part of the schema
// contract, not user configuration.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.5)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert at analyzing car dealer websites and extracting relevant business information. Be thorough and comprehensive in your analysis. Always return valid JSON.",
			}},
		},
		Temperature:      &temp,
		MaxOutputTokens:  maxOutputTokens,
		ResponseMIMEType: "application/json",
	}
}

// BuildPrompt embeds the page text, truncated to maxContentChars, into
// the fixed extraction template.
func BuildPrompt(text string) string {
	runes := []rune(text)
	if len(runes) > maxContentChars {
		text = string(runes[:maxContentChars])
	}

	return fmt.Sprintf(`Analyze this car dealer website content and extract the following information in a structured format.
Be thorough and try to find as much information as possible for each category.
If you're not completely sure about something, include it anyway with appropriate wording.

Website Content:
%s

Please extract and format the information into these categories:
1. Inventory Highlights - What types of vehicles do they specialize in? What brands or types of cars do they mention?
2. Special Offers - Any promotions, deals, or special financing offers mentioned?
3. Financing Options - What financing services or options do they provide?
4. Additional Services - What other services do they offer? (maintenance, warranties, etc.)
5. Company Background - Any information about their history, experience, or reputation?
6. Unique Selling Points - What makes them different from other dealers?
7. Customer Policies - Any information about warranties, returns, or customer service policies?
8. Contact Details - Look for any additional contact information such as alternative phone numbers, email addresses, social media links, fax numbers, and department-specific contacts.
9. Management/Staff - Look for the owner or dealer principal name, the management team, key staff members, years of experience, and professional certifications or affiliations.

Format the response as JSON with these exact keys:
{
    "inventory_highlights": ["point 1", "point 2"],
    "special_offers": ["offer 1", "offer 2"],
    "financing_options": ["option 1", "option 2"],
    "services": ["service 1", "service 2"],
    "company_background": "brief history",
    "unique_points": ["point 1", "point 2"],
    "policies": ["policy 1", "policy 2"],
    "contact_details": {
        "phone_numbers": ["number 1"],
        "emails": ["email 1"],
        "social_media": ["link 1"],
        "other_contact": ["detail 1"]
    },
    "management_info": {
        "owner": "name if available",
        "team": ["person 1 and role"],
        "experience": "years or description",
        "certifications": ["cert 1"]
    }
}

If you can't find information for a category, include it with an empty list or appropriate null values.
Try to be comprehensive and include any relevant information you find.`, text)
}
