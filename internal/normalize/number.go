// =============================================================================
// Bolle Export - Numeric Value Normalizer
// =============================================================================
//
// This module coerces free-form numeric text into clean numbers. Input files
// mix European decimal notation ("1.234,56") and US notation ("1,234.56"),
// often within the same sheet, so the separator convention is detected per
// value rather than configured globally.
//
// FAILURE POLICY:
//   Malformed numeric text degrades to zero. A bad quantity must never abort
//   a conversion run; the surrounding row either carries a zero quantity or
//   is skipped by the segmenter for other reasons.
//
// =============================================================================

package normalize

import (
	"math"
	"strconv"
	"strings"
)

// =============================================================================
// NUMBER COERCION
// =============================================================================

// Number coerces a raw cell value into a float64.
//
// PARAMETERS:
//   - raw: The raw cell text.
//   - asInteger: When true, the result is rounded to the nearest integer.
//
// RETURNS:
//   - The coerced value, or 0 when the text cannot be parsed.
//
// SEPARATOR DETECTION:
//   - Both separators present: the rightmost one is the decimal separator;
//     the other is a thousands separator and is dropped.
//   - Comma only: the comma is the decimal separator, unless there is more
//     than one, in which case all commas are thousands separators.
//   - Period only: parsed as-is.
func Number(raw string, asInteger bool) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// European: "1.234,56" -> "1234.56"
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// US: "1,234.56" -> "1234.56"
			s = strings.ReplaceAll(s, ",", "")
		}

	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			// Multiple commas are thousands separators: "1,234,567"
			s = strings.ReplaceAll(s, ",", "")
		} else {
			// Single comma is the decimal separator: "1234,56"
			s = strings.ReplaceAll(s, ",", ".")
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	if asInteger {
		return math.Round(value)
	}
	return value
}

// Integer coerces a raw cell value into an int, rounding to nearest.
func Integer(raw string) int {
	return int(Number(raw, true))
}
