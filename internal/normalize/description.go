// =============================================================================
// Bolle Export - Description Normalizer
// =============================================================================
//
// This module cleans free-form product descriptions before they are written
// into fixed-width records or delimited lines. Suppliers routinely append
// SKU codes, bracketed notes and packaging counts to the product name; the
// interchange format wants the bare name.
//
// RULE MODEL:
//   Each cleaner is an ordered list of regular expression rules applied
//   repeatedly until no rule fires (a fixed point). Annotations chain, e.g.
//   "Olio EVO SKU:A-12 (6 pz)", so a single pass is not enough.
//
// =============================================================================

package normalize

import (
	"regexp"
	"strings"
)

// =============================================================================
// CLEANING MODES
// =============================================================================

// Mode selects how aggressively product descriptions are cleaned.
type Mode string

const (
	// ModeNone returns the trimmed description unchanged.
	ModeNone Mode = "none"

	// ModeBase strips SKU/article-code tokens and trailing annotations.
	ModeBase Mode = "base"

	// ModeAggressive additionally replaces characters outside the safe
	// repertoire (letters, digits, space, "-_/.") with spaces and collapses
	// repeated whitespace. Accented letters are kept.
	ModeAggressive Mode = "aggressive"
)

// ParseMode maps a configuration string to a Mode, defaulting to ModeNone.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeBase:
		return ModeBase
	case ModeAggressive:
		return ModeAggressive
	default:
		return ModeNone
	}
}

// =============================================================================
// RULE LISTS
// =============================================================================

// skuRules strips SKU and article-code annotations. Order matters: explicit
// labelled codes go first, positional trailing patterns last.
var skuRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bSKU[:\s]*[A-Za-z0-9\-_/.]+`),
	regexp.MustCompile(`(?i)\bCOD(?:ICE)?[:\s]*[A-Za-z0-9\-_/.]+`),
	regexp.MustCompile(`(?i)\bART(?:ICOLO)?[:\s]*[A-Za-z0-9\-_/.]+`),
	regexp.MustCompile(`\([^)]*\)\s*$`),
	regexp.MustCompile(`\[[^\]]*\]\s*$`),
	regexp.MustCompile(`[#@][A-Za-z0-9\-_/.]+\s*$`),
	regexp.MustCompile(`\b[A-Z]{2,}\d{2,}\s*$`),
}

// packagingRules strips trailing packaging-count annotations such as
// "(6 pz)", "- 10 PZ", "x12" or a trailing bare number. These are the
// variants seen ahead of fixed-width encoding, where the count is already
// carried by the quantity field.
var packagingRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*\(\s*\d+\s*(?:pz|pcs?|pezzi)?\.?\s*\)\s*$`),
	regexp.MustCompile("(?i)\\s*[-\u2013]\\s*\\d+\\s*(?:pz|pcs?|pezzi)\\.?\\s*$"),
	regexp.MustCompile(`(?i)\s+x\s*\d+\s*$`),
	regexp.MustCompile(`\s+\d+\s*$`),
}

// trailingSeparators trims leftover punctuation once annotations are gone.
var trailingSeparators = regexp.MustCompile(`[\s,\-_/.]+$`)

// unsafeRunes matches everything outside the aggressive-mode repertoire.
var unsafeRunes = regexp.MustCompile("[^A-Za-z\u00c0-\u00d6\u00d8-\u00f6\u00f8-\u00ff0-9 \\-_/.]")

// repeatedSpace collapses runs of whitespace.
var repeatedSpace = regexp.MustCompile(`\s{2,}`)

// pzToken detects a space-bounded "PZ" token inside a description.
var pzToken = regexp.MustCompile(`(?i)\spz\b`)

// =============================================================================
// DESCRIPTION CLEANERS
// =============================================================================

// Description cleans a product description according to the given mode.
func Description(raw string, mode Mode) string {
	s := strings.TrimSpace(raw)

	switch mode {
	case ModeBase:
		s = applyFixedPoint(s, skuRules)
		return strings.TrimSpace(trailingSeparators.ReplaceAllString(s, ""))

	case ModeAggressive:
		s = applyFixedPoint(s, skuRules)
		s = unsafeRunes.ReplaceAllString(s, " ")
		s = repeatedSpace.ReplaceAllString(s, " ")
		return strings.Trim(s, " -_/.,")

	default:
		return s
	}
}

// CleanQuantityAnnotations strips trailing packaging-count annotations from
// a description. It is applied ahead of fixed-width encoding, where counts
// belong in the quantity field, not the description.
func CleanQuantityAnnotations(raw string) string {
	s := applyFixedPoint(strings.TrimSpace(raw), packagingRules)
	return strings.TrimSpace(trailingSeparators.ReplaceAllString(s, ""))
}

// applyFixedPoint applies an ordered rule list repeatedly until no rule
// fires. Every replacement removes characters, so termination is guaranteed.
func applyFixedPoint(s string, rules []*regexp.Regexp) string {
	for {
		before := s
		for _, rule := range rules {
			s = strings.TrimSpace(rule.ReplaceAllString(s, ""))
		}
		if s == before {
			return s
		}
	}
}

// =============================================================================
// UNIT INFERENCE
// =============================================================================

// InferUnit resolves the unit of measure for a detail line.
//
// PARAMETERS:
//   - explicit: The raw unit cell value, if a unit column was resolved.
//   - description: The raw description, used as a fallback signal.
//
// RETURNS:
//   - "KG" or "PZ".
//
// The explicit value wins when it is exactly KG or PZ (case-insensitive).
// Otherwise the description is scanned for a space-bounded "PZ" token, and
// KG is the default.
func InferUnit(explicit, description string) string {
	switch strings.ToUpper(strings.TrimSpace(explicit)) {
	case "KG":
		return "KG"
	case "PZ":
		return "PZ"
	}

	if pzToken.MatchString(description) {
		return "PZ"
	}
	return "KG"
}
