// =============================================================================
// Bolle Export - Column Resolver
// =============================================================================
//
// This module identifies which input columns hold the product description,
// article code, quantity, unit of measure and weight. Suppliers never agree on
// header names ("Descrizione articolo", "DESCR.", "Nome prodotto", ...), so
// resolution is heuristic: header names are normalized and tested against a
// priority-ordered candidate list per role.
//
// MATCHING RULES:
//   - Header names are lower-cased, stripped of diacritics and reduced to
//     alphanumerics before matching.
//   - For each role, candidates are tried in order; for each candidate,
//     columns are tried in their original order. The first match wins and
//     is never overridden by a later candidate.
//   - description, code and quantity are required; unit is optional and is
//     inferred per row when unresolved.
//
// =============================================================================

package columns

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// ROLES
// =============================================================================

// Roles maps each pipeline role to the resolved input column name.
type Roles struct {
	// Description is the column holding the product description. Required.
	Description string

	// Code is the column holding the article code. Required.
	Code string

	// Quantity is the column holding the quantity. Required.
	Quantity string

	// Unit is the column holding the unit of measure. Optional; empty when
	// no unit column was found.
	Unit string

	// Weight is the column holding the weight, used by the delimited export.
	// Optional in fixed-record resolution; empty when no weight column was
	// found.
	Weight string
}

// =============================================================================
// CANDIDATE LISTS
// =============================================================================

// candidate is a single normalized token to test against a header name.
type candidate struct {
	// token is the normalized text to look for.
	token string

	// exact requires the whole normalized header to equal the token.
	// Used for very short tokens ("um") that would otherwise match inside
	// unrelated words.
	exact bool
}

// Candidate lists per role, in priority order. The most specific tokens come
// first so that e.g. "Codice articolo" resolves as code, not description.
var (
	descriptionCandidates = []candidate{
		{token: "descrizionearticolo"},
		{token: "descrizione"},
		{token: "descr"},
		{token: "desc"},
		{token: "articolo"},
		{token: "nomeprodotto"},
		{token: "nome"},
		{token: "prodotto"},
	}

	codeCandidates = []candidate{
		{token: "codicearticolo"},
		{token: "codart"},
		{token: "codice"},
		{token: "cod"},
		{token: "sku"},
		{token: "art", exact: true},
	}

	quantityCandidates = []candidate{
		{token: "quantita"},
		{token: "quant"},
		{token: "qta"},
		{token: "qty"},
		{token: "pezzi"},
		{token: "colli"},
	}

	unitCandidates = []candidate{
		{token: "unitadimisura"},
		{token: "um", exact: true},
		{token: "unita"},
		{token: "misura"},
	}

	weightCandidates = []candidate{
		{token: "kg"},
		{token: "peso"},
		{token: "weight"},
	}
)

// =============================================================================
// MISSING COLUMNS ERROR
// =============================================================================

// MissingColumnsError reports required roles that could not be resolved. It
// carries the full normalized-name table so the message is self-serve: the
// user can see exactly what the resolver saw.
type MissingColumnsError struct {
	// Missing lists the unresolved required role names.
	Missing []string

	// Headers are the original column names, in input order.
	Headers []string

	// Normalized are the corresponding normalized names, in the same order.
	Normalized []string
}

// Error implements the error interface.
func (e *MissingColumnsError) Error() string {
	pairs := make([]string, len(e.Headers))
	for i := range e.Headers {
		pairs[i] = fmt.Sprintf("%q->%q", e.Headers[i], e.Normalized[i])
	}
	return fmt.Sprintf("required columns not found: %s (detected columns: %s)",
		strings.Join(e.Missing, ", "), strings.Join(pairs, ", "))
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve identifies the role columns among the given header names.
//
// PARAMETERS:
//   - headers: The column names, in input order.
//
// RETURNS:
//   - The resolved Roles.
//   - A MissingColumnsError when any required role is unresolved.
func Resolve(headers []string) (Roles, error) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeName(h)
	}

	roles := Roles{
		Description: match(headers, normalized, descriptionCandidates),
		Code:        match(headers, normalized, codeCandidates),
		Quantity:    match(headers, normalized, quantityCandidates),
		Unit:        match(headers, normalized, unitCandidates),
		Weight:      match(headers, normalized, weightCandidates),
	}

	var missing []string
	if roles.Description == "" {
		missing = append(missing, "description")
	}
	if roles.Code == "" {
		missing = append(missing, "code")
	}
	if roles.Quantity == "" {
		missing = append(missing, "quantity")
	}

	if len(missing) > 0 {
		return Roles{}, &MissingColumnsError{
			Missing:    missing,
			Headers:    headers,
			Normalized: normalized,
		}
	}

	return roles, nil
}

// ResolveDelimited identifies the role columns for the delimited export,
// which carries no article code: description and quantity are required.
// When no weight candidate matches, the last column stands in for it, since
// weight-bearing exports conventionally put the weight in the final column.
func ResolveDelimited(headers []string) (Roles, error) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeName(h)
	}

	roles := Roles{
		Description: match(headers, normalized, descriptionCandidates),
		Quantity:    match(headers, normalized, quantityCandidates),
		Weight:      match(headers, normalized, weightCandidates),
	}

	var missing []string
	if roles.Description == "" {
		missing = append(missing, "description")
	}
	if roles.Quantity == "" {
		missing = append(missing, "quantity")
	}

	if len(missing) > 0 {
		return Roles{}, &MissingColumnsError{
			Missing:    missing,
			Headers:    headers,
			Normalized: normalized,
		}
	}

	if roles.Weight == "" && len(headers) > 0 {
		roles.Weight = headers[len(headers)-1]
	}

	return roles, nil
}

// match returns the first header matching any candidate, in candidate
// priority order, then column order.
func match(headers, normalized []string, candidates []candidate) string {
	for _, c := range candidates {
		for i, name := range normalized {
			if c.exact {
				if name == c.token {
					return headers[i]
				}
				continue
			}
			if strings.Contains(name, c.token) {
				return headers[i]
			}
		}
	}
	return ""
}

// =============================================================================
// NAME NORMALIZATION
// =============================================================================

// diacriticStripper decomposes characters and removes combining marks, so
// that "Quantità" and "Quantita" normalize identically.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName normalizes a column name for matching: lower case, no
// diacritics, alphanumerics only.
func NormalizeName(name string) string {
	stripped, _, err := transform.String(diacriticStripper, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
