package model

import "regexp"

// ParserConfig carries the token patterns used to turn raw guest text into
// guest units. All patterns are passed explicitly so that parsing has no
// process-wide registry or initialization order dependencies.
type ParserConfig struct {
	// ExplicitCount matches a parenthesized headcount like "(3)" or
	// "(4 people)". A match overrides every computed count.
	ExplicitCount *regexp.Regexp
	// Connectors splits a token into individual sub-names ("&", "+", "and",
	// "plus", "also").
	Connectors *regexp.Regexp
	// DisplayConnectors is replaced by " & " when building the display name.
	DisplayConnectors *regexp.Regexp
	// PlusOne matches a literal "plus one" phrase, worth one extra seat.
	PlusOne *regexp.Regexp
	// GuestKeyword matches a standalone "guest" word, worth one extra seat.
	GuestKeyword *regexp.Regexp
	// SortKeyMarker prefixes an explicit sort key inside a display name.
	SortKeyMarker string
}

// DefaultParserConfig returns the patterns used by the standard guest-list
// syntax.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		ExplicitCount:     regexp.MustCompile(`\((\d+)[^)]*\)`),
		Connectors:        regexp.MustCompile(`(?i)\s*[&+]\s*|\s+(?:and|plus|also)\s+`),
		DisplayConnectors: regexp.MustCompile(`(?i)\s*\+\s*|\s+and\s+`),
		PlusOne:           regexp.MustCompile(`(?i)\bplus\s+one\b`),
		GuestKeyword:      regexp.MustCompile(`(?i)\bguest\b`),
		SortKeyMarker:     "%",
	}
}
