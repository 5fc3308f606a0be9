// Package dealerscout locates independent used-car dealers near a US zip
// code and enriches each result with a structured summary of the dealer's
// own website. It queries a places provider, filters and deduplicates the
// hits by zip code, extracts readable text from each dealer site, and asks
// a text-generation service for a fixed-schema analysis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., googlemaps/, trafilatura/, gemini/).
package dealerscout
