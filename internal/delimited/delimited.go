// =============================================================================
// Bolle Export - Delimited Line Builder
// =============================================================================
//
// This module emits the free-form delimited export variant: one line per data
// row, laid out as
//
//   <name><A spaces><pieces><B spaces><weight>
//
// where pieces is the quantity rounded to an integer and weight is formatted
// with a fixed decimal count and a configurable decimal separator. The
// spacing runs are what the receiving side keys on, so both are configurable
// per profile rather than hard-coded.
//
// Unlike the fixed-width variant there is no document segmentation: every row
// becomes a line, and malformed numbers degrade to zero instead of dropping
// the row.
//
// =============================================================================

package delimited

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/bolle-export/internal/normalize"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Layout defaults, matching the interchange counterparties' expectations.
const (
	// DefaultNameToPiecesSpaces is the default spacing between the product
	// name and the piece count.
	DefaultNameToPiecesSpaces = 1

	// DefaultPiecesToWeightSpaces is the default spacing between the piece
	// count and the weight.
	DefaultPiecesToWeightSpaces = 26

	// DefaultWeightDecimals is the default decimal count for the weight.
	DefaultWeightDecimals = 3

	// DefaultDecimalSeparator is the default weight decimal separator.
	DefaultDecimalSeparator = "."
)

// Options controls the line layout.
type Options struct {
	// NameToPiecesSpaces is the number of spaces between name and pieces.
	NameToPiecesSpaces int

	// PiecesToWeightSpaces is the number of spaces between pieces and weight.
	PiecesToWeightSpaces int

	// WeightDecimals is the decimal count used when formatting the weight.
	WeightDecimals int

	// DecimalSeparator is the weight decimal separator, "." or ",".
	DecimalSeparator string
}

// DefaultOptions returns the default line layout.
func DefaultOptions() Options {
	return Options{
		NameToPiecesSpaces:   DefaultNameToPiecesSpaces,
		PiecesToWeightSpaces: DefaultPiecesToWeightSpaces,
		WeightDecimals:       DefaultWeightDecimals,
		DecimalSeparator:     DefaultDecimalSeparator,
	}
}

// =============================================================================
// INPUT TYPE
// =============================================================================

// Row is one input row with its role columns already resolved. Values are
// raw cell text; numeric coercion happens during the build.
type Row struct {
	// Name is the raw product name cell.
	Name string

	// Pieces is the raw piece-count cell.
	Pieces string

	// Weight is the raw weight cell.
	Weight string
}

// =============================================================================
// BUILDING
// =============================================================================

// FormatWeight formats a weight with a fixed decimal count and the given
// decimal separator.
func FormatWeight(value float64, decimals int, separator string) string {
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(value, 'f', decimals, 64)
	if separator == "," {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// Build emits the delimited export text, one line per row, joined with
// newlines and no trailing newline.
//
// PARAMETERS:
//   - rows: The input rows, in original file order.
//   - opts: The line layout.
//
// RETURNS:
//   - The joined lines. An empty row slice yields "".
func Build(rows []Row, opts Options) string {
	nameGap := strings.Repeat(" ", max(opts.NameToPiecesSpaces, 0))
	piecesGap := strings.Repeat(" ", max(opts.PiecesToWeightSpaces, 0))

	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		b.WriteString(row.Name)
		b.WriteString(nameGap)
		b.WriteString(strconv.Itoa(normalize.Integer(row.Pieces)))
		b.WriteString(piecesGap)
		b.WriteString(FormatWeight(normalize.Number(row.Weight, false), opts.WeightDecimals, opts.DecimalSeparator))
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
