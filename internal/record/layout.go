// =============================================================================
// Bolle Export - Canonical Record Layouts
// =============================================================================
//
// This file defines the two record variants of the interchange format and
// their exact field positions.
//
// HEADER RECORD ("01") LAYOUT (1-based start / length):
//
//   |   1 |  2 | record type "01"                       |
//   |   3 |  5 | sequence number, zero-padded           |
//   |   8 |  7 | blank                                  |
//   |  15 |  6 | blank                                  |
//   |  21 |  7 | document number                        |
//   |  28 |  6 | document date YYMMDD                   |
//   |  34 | 15 | supplier code                          |
//   |  49 |  1 | space                                  |
//   |  50 | 15 | blank                                  |
//   |  65 | 15 | blank                                  |
//   |  80 | 15 | recipient code, right-aligned          |
//   |  95 |  1 | "1"                                    |
//   |  96 |  1 | space                                  |
//   |  97 |  3 | currency                               |
//   | 100 |  7 | blank                                  |
//   | 107 |  3 | protocol tag                           |
//   | 110 | 10 | document number                        |
//   | 120 |  9 | blank                                  |
//
// DETAIL RECORD ("02") LAYOUT:
//
//   |   1 |  2 | record type "02"                       |
//   |   3 |  5 | sequence number of the owning header   |
//   |   8 | 15 | article code                           |
//   |  23 | 30 | cleaned description                    |
//   |  53 |  2 | unit of measure                        |
//   |  55 | 10 | quantity x 1000, zero-padded           |
//   |  65 | 12 | blank (price, reserved)                |
//   |  74 | 12 | blank (amount, reserved)               |
//   |  83 |  4 | space (pieces, reserved)               |
//   |  87 |  1 | blank (VAT class, reserved)            |
//   |  88 |  2 | space (VAT code, reserved)             |
//   |  90 |  1 | blank (movement type, reserved)        |
//   |  91 |  1 | "1" (transfer type)                    |
//   |  92 |  5 | "00000" (package count, fixed)         |
//   |  97 | 12 | blank (filler)                         |
//   | 109 |  1 | blank (delivery type)                  |
//   | 110 | 19 | blank (final filler)                   |
//
// =============================================================================

package record

import (
	"fmt"
	"math"
)

// =============================================================================
// HEADER RECORD
// =============================================================================

// Header holds the values of a document header record.
type Header struct {
	// Sequence is the document's running sequence number within the export.
	Sequence int

	// DocumentNumber is the transport document number.
	DocumentNumber string

	// DocumentDate is the document date as a 6-digit YYMMDD string.
	// The date parser substitutes "000000" when the source date is
	// malformed, so this is always safe to write verbatim.
	DocumentDate string

	// SupplierCode identifies the issuing party.
	SupplierCode string

	// RecipientCode identifies the receiving party. It is right-aligned in
	// its field, unlike every other value.
	RecipientCode string

	// Currency is the 3-letter currency code (e.g. "EUR").
	Currency string

	// ProtocolTag is the fixed interchange protocol tag (e.g. "DSV").
	ProtocolTag string
}

// Fields returns the ordered field specifications for the header layout.
func (h Header) Fields() []FieldSpec {
	return []FieldSpec{
		{Start: 1, Length: 2, Value: TypeHeader},
		{Start: 3, Length: 5, Value: fmt.Sprintf("%05d", h.Sequence)},
		{Start: 8, Length: 7, Value: ""},
		{Start: 15, Length: 6, Value: ""},
		{Start: 21, Length: 7, Value: h.DocumentNumber},
		{Start: 28, Length: 6, Value: h.DocumentDate},
		{Start: 34, Length: 15, Value: h.SupplierCode},
		{Start: 49, Length: 1, Value: " "},
		{Start: 50, Length: 15, Value: ""},
		{Start: 65, Length: 15, Value: ""},
		{Start: 80, Length: 15, Value: rightAlign(h.RecipientCode, 15)},
		{Start: 95, Length: 1, Value: "1"},
		{Start: 96, Length: 1, Value: " "},
		{Start: 97, Length: 3, Value: h.Currency},
		{Start: 100, Length: 7, Value: ""},
		{Start: 107, Length: 3, Value: h.ProtocolTag},
		{Start: 110, Length: 10, Value: h.DocumentNumber},
		{Start: 120, Length: 9, Value: ""},
	}
}

// Encode lays out the header and verifies the fixed-length post-condition.
func (h Header) Encode() (string, error) {
	return checkWidth(TypeHeader, Encode(h.Fields(), Width))
}

// =============================================================================
// DETAIL RECORD
// =============================================================================

// Detail holds the values of a line item record.
type Detail struct {
	// Sequence is the sequence number of the enclosing document header,
	// not a per-line counter.
	Sequence int

	// ArticleCode is the product code.
	ArticleCode string

	// Description is the cleaned product description.
	Description string

	// Unit is the unit of measure code ("KG" or "PZ").
	Unit string

	// Quantity is the normalized quantity. It is written scaled by 1000 and
	// rounded to the nearest integer.
	Quantity float64
}

// Fields returns the ordered field specifications for the detail layout.
func (d Detail) Fields() []FieldSpec {
	return []FieldSpec{
		{Start: 1, Length: 2, Value: TypeDetail},
		{Start: 3, Length: 5, Value: fmt.Sprintf("%05d", d.Sequence)},
		{Start: 8, Length: 15, Value: d.ArticleCode},
		{Start: 23, Length: 30, Value: d.Description},
		{Start: 53, Length: 2, Value: d.Unit},
		{Start: 55, Length: 10, Value: scaledQuantity(d.Quantity)},
		{Start: 65, Length: 12, Value: ""},
		{Start: 74, Length: 12, Value: ""},
		{Start: 83, Length: 4, Value: " "},
		{Start: 87, Length: 1, Value: ""},
		{Start: 88, Length: 2, Value: " "},
		{Start: 90, Length: 1, Value: ""},
		{Start: 91, Length: 1, Value: "1"},
		{Start: 92, Length: 5, Value: "00000"},
		{Start: 97, Length: 12, Value: ""},
		{Start: 109, Length: 1, Value: ""},
		{Start: 110, Length: 19, Value: ""},
	}
}

// Encode lays out the detail line and verifies the fixed-length post-condition.
func (d Detail) Encode() (string, error) {
	return checkWidth(TypeDetail, Encode(d.Fields(), Width))
}

// scaledQuantity formats a quantity as a zero-padded 10-digit integer scaled
// by 1000. Non-finite or negative quantities are unconvertible and collapse
// to all zeros.
func scaledQuantity(quantity float64) string {
	scaled := quantity * 1000
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) || scaled < 0 {
		return "0000000000"
	}
	return fmt.Sprintf("%010d", int64(math.Round(scaled)))
}

// rightAlign pads a value with leading spaces to the given width. Values
// longer than the width are returned unchanged and truncated by the encoder.
func rightAlign(value string, width int) string {
	runes := []rune(value)
	if len(runes) >= width {
		return value
	}
	padded := make([]rune, width-len(runes), width)
	for i := range padded {
		padded[i] = ' '
	}
	return string(append(padded, runes...))
}
