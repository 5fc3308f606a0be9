package main

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmalczyk/dealerscout"
)

const noAnalysisMessage = "Could not analyze website content. The website might be unavailable or require authentication."

const analysisNote = "This analysis is based on the dealer's website content and may not be complete or up-to-date. Please contact the dealer directly for the most current information."

// renderReport writes one dealer card as plain text. When withAnalysis
// is false the analysis section is omitted entirely instead of rendering
// the unavailability placeholder.
func renderReport(w io.Writer, report *dealerscout.Report, today time.Weekday, withAnalysis bool) {
	d := report.Dealer

	fmt.Fprintf(w, "%s\n%s\n", d.Name, strings.Repeat("=", utf8.RuneCountInString(d.Name)))
	fmt.Fprintf(w, "Address: %s\n", orNA(d.Address))
	fmt.Fprintf(w, "Phone:   %s\n", orNA(d.Phone))
	fmt.Fprintf(w, "Website: %s\n", orNA(d.Website))
	fmt.Fprintf(w, "Rating:  %s\n", dealerscout.FormatRating(d.Rating, d.Reviews))

	fmt.Fprintln(w, "Hours:")
	if len(d.Hours) == 0 {
		fmt.Fprintln(w, "    Hours not available")
	} else {
		for _, row := range dealerscout.FormatBusinessHours(d.Hours, today) {
			marker := " "
			if row.Today {
				marker = ">"
			}
			fmt.Fprintf(w, "  %s %-10s %s\n", marker, row.Day, row.Hours)
		}
	}

	if withAnalysis {
		renderAnalysis(w, report.Analysis)
	}
	fmt.Fprintln(w)
}

// renderAnalysis writes the website analysis section. A nil analysis
// renders a placeholder so the dealer card is complete either way.
func renderAnalysis(w io.Writer, a *dealerscout.SiteAnalysis) {
	fmt.Fprintln(w, "\nWebsite Analysis")
	if a == nil {
		fmt.Fprintf(w, "    %s\n", noAnalysisMessage)
		return
	}

	renderContact(w, a.ContactDetails)
	renderManagement(w, a.ManagementInfo)
	renderList(w, "Inventory Specialties", a.InventoryHighlights)
	renderList(w, "Current Offers & Promotions", a.SpecialOffers)
	renderList(w, "Financing Solutions", a.FinancingOptions)
	renderList(w, "Services & Support", a.Services)
	if a.CompanyBackground != "" {
		fmt.Fprintf(w, "  About the Dealer\n    %s\n", a.CompanyBackground)
	}
	renderList(w, "Why Choose This Dealer", a.UniquePoints)
	renderList(w, "Customer Policies & Guarantees", a.Policies)

	fmt.Fprintf(w, "  Note: %s\n", analysisNote)
}

func renderContact(w io.Writer, c dealerscout.ContactDetails) {
	if len(c.PhoneNumbers) == 0 && len(c.Emails) == 0 && len(c.SocialMedia) == 0 && len(c.OtherContact) == 0 {
		return
	}
	fmt.Fprintln(w, "  Additional Contact Information")
	renderSublist(w, "Phone Numbers", c.PhoneNumbers)
	renderSublist(w, "Email Addresses", c.Emails)
	renderSublist(w, "Social Media", c.SocialMedia)
	renderSublist(w, "Other", c.OtherContact)
}

func renderManagement(w io.Writer, m dealerscout.ManagementInfo) {
	if m.Owner == "" && len(m.Team) == 0 && m.Experience == "" && len(m.Certifications) == 0 {
		return
	}
	fmt.Fprintln(w, "  Management & Staff")
	if m.Owner != "" {
		fmt.Fprintf(w, "    Owner: %s\n", m.Owner)
	}
	renderSublist(w, "Team", m.Team)
	if m.Experience != "" {
		fmt.Fprintf(w, "    Experience: %s\n", m.Experience)
	}
	renderSublist(w, "Certifications & Affiliations", m.Certifications)
}

// renderList writes a labeled bullet list, omitting empty sections.
func renderList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", label)
	for _, item := range items {
		fmt.Fprintf(w, "    - %s\n", item)
	}
}

func renderSublist(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "    %s:\n", label)
	for _, item := range items {
		fmt.Fprintf(w, "      - %s\n", item)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
