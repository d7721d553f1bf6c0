// =============================================================================
// Bolle Export - Document Segmenter
// =============================================================================
//
// This module scans ordered input rows and splits them into transport
// documents. The input mixes two kinds of rows in one table:
//
//   - Header-marker rows, whose description carries the literal phrase
//     "Rif. Doc. di trasporto <N> del <DD/MM/YYYY>". These open a new
//     document.
//   - Detail rows, which belong to the most recently opened document.
//
// STATE MACHINE:
//   The scan is an explicit two-state machine (NoActiveDocument and
//   InDocument). Detail rows seen before the first header have no document
//   to belong to and are skipped silently; so are detail rows missing their
//   code or quantity. Skips are counted for diagnostics but never reported
//   per row.
//
// SEQUENCE NUMBERS:
//   Each header increments a running sequence counter. Detail records carry
//   the sequence number of their enclosing header, which is what ties an
//   "02" line back to its "01" line in the flat output.
//
// =============================================================================

package segmenter

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/ginjaninja78/bolle-export/internal/normalize"
	"github.com/ginjaninja78/bolle-export/internal/record"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrEmptyResult is returned when a scan produces zero records. This is
// distinct from per-row skips, which are silent: an empty result means the
// whole file yielded nothing, usually because no header-marker row was
// recognized or the wrong columns were mapped.
var ErrEmptyResult = errors.New("no records produced: check that the file contains transport document headers and that columns are mapped correctly")

// =============================================================================
// INPUT AND OUTPUT TYPES
// =============================================================================

// Row is one input row with its role columns already resolved.
type Row struct {
	// Description is the raw description cell.
	Description string

	// Code is the raw article code cell.
	Code string

	// Quantity is the raw quantity cell.
	Quantity string

	// Unit is the raw unit cell, empty when no unit column was resolved.
	Unit string
}

// Options carries the per-profile constants written into header records and
// the description cleaning mode for detail records.
type Options struct {
	// SupplierCode identifies the issuing party.
	SupplierCode string

	// RecipientCode identifies the receiving party.
	RecipientCode string

	// Currency is the 3-letter currency code.
	Currency string

	// ProtocolTag is the fixed interchange protocol tag.
	ProtocolTag string

	// CleanMode selects the description cleaning mode applied before the
	// packaging-count stripper.
	CleanMode normalize.Mode
}

// Stats counts what the scan did. Skip counters exist for aggregate
// diagnostics only; individual skips are intentionally silent.
type Stats struct {
	// Documents is the number of header records emitted.
	Documents int

	// DetailLines is the number of detail records emitted.
	DetailLines int

	// OrphanRowsSkipped counts detail rows seen before the first header.
	OrphanRowsSkipped int

	// IncompleteRowsSkipped counts detail rows missing code or quantity.
	IncompleteRowsSkipped int
}

// =============================================================================
// STATE MACHINE
// =============================================================================

// state is the segmenter's scan state.
type state int

const (
	// stateNoDocument means no header has been seen yet.
	stateNoDocument state = iota

	// stateInDocument means a document context is active.
	stateInDocument
)

// documentContext is the mutable context threaded across the scan while a
// document is active.
type documentContext struct {
	number   string
	date     string // YYMMDD, "000000" when the source date was malformed
	sequence int
}

// =============================================================================
// HEADER MARKER
// =============================================================================

// headerMarker recognizes the phrase that opens a transport document,
// optionally preceded by markdown emphasis markers. Capture group 1 is the
// document number, group 2 the DD/MM/YYYY date.
var headerMarker = regexp.MustCompile(`(?i)^\s*(?:\*+\s*)?rif\.?\s*doc\.?\s*di\s*trasporto\s+(\d+)\s+del\s+(\d{1,2}/\d{1,2}/\d{4})\s*:?`)

// parseDocumentDate converts a DD/MM/YYYY date to the 6-digit YYMMDD form
// used by the header layout. A malformed date degrades to the "000000"
// sentinel rather than failing the run.
func parseDocumentDate(raw string) string {
	t, err := time.Parse("2/1/2006", strings.TrimSpace(raw))
	if err != nil {
		return "000000"
	}
	return t.Format("060102")
}

// =============================================================================
// SEGMENTATION
// =============================================================================

// Segment scans rows in order and emits the interleaved header/detail record
// stream.
//
// PARAMETERS:
//   - rows: The input rows, in original file order.
//   - opts: Profile constants and cleaning mode.
//
// RETURNS:
//   - The encoded records, one 128-character line each, in emission order.
//   - Scan statistics.
//   - ErrEmptyResult when zero records were produced, or a record layout
//     error (fatal, indicates a bug rather than bad input).
func Segment(rows []Row, opts Options) ([]string, *Stats, error) {
	var (
		lines   []string
		stats   Stats
		current documentContext
		st      = stateNoDocument
	)

	for _, row := range rows {
		// A header-marker row opens a new document and is never also
		// processed as a detail row.
		if m := headerMarker.FindStringSubmatch(row.Description); m != nil {
			current = documentContext{
				number:   m[1],
				date:     parseDocumentDate(m[2]),
				sequence: current.sequence + 1,
			}
			st = stateInDocument

			line, err := record.Header{
				Sequence:       current.sequence,
				DocumentNumber: current.number,
				DocumentDate:   current.date,
				SupplierCode:   opts.SupplierCode,
				RecipientCode:  opts.RecipientCode,
				Currency:       opts.Currency,
				ProtocolTag:    opts.ProtocolTag,
			}.Encode()
			if err != nil {
				return nil, nil, err
			}

			lines = append(lines, line)
			stats.Documents++
			continue
		}

		// Detail rows before the first header have no document to belong
		// to: skip silently.
		if st == stateNoDocument {
			stats.OrphanRowsSkipped++
			continue
		}

		// Detail rows missing code or quantity are incomplete: skip silently.
		if strings.TrimSpace(row.Code) == "" || strings.TrimSpace(row.Quantity) == "" {
			stats.IncompleteRowsSkipped++
			continue
		}

		description := normalize.CleanQuantityAnnotations(
			normalize.Description(row.Description, opts.CleanMode))

		line, err := record.Detail{
			Sequence:    current.sequence,
			ArticleCode: strings.TrimSpace(row.Code),
			Description: description,
			Unit:        normalize.InferUnit(row.Unit, row.Description),
			Quantity:    normalize.Number(row.Quantity, false),
		}.Encode()
		if err != nil {
			return nil, nil, err
		}

		lines = append(lines, line)
		stats.DetailLines++
	}

	if len(lines) == 0 {
		return nil, nil, ErrEmptyResult
	}

	return lines, &stats, nil
}
