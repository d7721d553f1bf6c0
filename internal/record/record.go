// =============================================================================
// Bolle Export - Fixed-Width Record Encoder
// =============================================================================
//
// This module is the heart of the export pipeline. It lays out field values
// at fixed byte offsets into 128-character transport records ("bolle") as
// consumed by the legacy interchange system.
//
// ENCODING MODEL:
//   A record is built by writing each field, left-justified and space-padded
//   or truncated to its declared length, onto a canvas of spaces. Offsets
//   are 1-based, following the column numbering used by transport-record
//   specifications. When two fields overlap, the later write wins; the
//   canonical layouts never overlap.
//
// POST-CONDITION:
//   Every emitted record is exactly 128 characters long. A violation is an
//   internal layout bug, never a data problem, and is reported as a
//   LengthError.
//
// =============================================================================

package record

import "fmt"

// =============================================================================
// CONSTANTS
// =============================================================================

// Width is the fixed length of every transport record, in characters.
const Width = 128

// Record type discriminators, written at offset 1 of every record.
const (
	// TypeHeader marks a document header record.
	TypeHeader = "01"

	// TypeDetail marks a line item (detail) record.
	TypeDetail = "02"
)

// =============================================================================
// FIELD SPECIFICATION
// =============================================================================

// FieldSpec describes a single positional field within a record.
type FieldSpec struct {
	// Start is the 1-based column where the field begins.
	Start int

	// Length is the field width in characters.
	Length int

	// Value is the raw field content. It is truncated or space-padded to
	// Length during encoding. An empty value leaves the region blank.
	Value string
}

// =============================================================================
// LENGTH ERROR
// =============================================================================

// LengthError reports a record whose encoded length is not exactly Width.
// This indicates a bug in a field layout, so it is fatal to the whole
// conversion rather than being skipped or tolerated.
type LengthError struct {
	// RecordType is the discriminator of the offending record ("01"/"02").
	RecordType string

	// Got is the actual encoded length.
	Got int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("record type %s encoded to %d characters, want %d", e.RecordType, e.Got, Width)
}

// =============================================================================
// ENCODER
// =============================================================================

// Encode writes the given fields onto a canvas of `width` spaces and returns
// the resulting line.
//
// PARAMETERS:
//   - fields: The ordered field specifications. Later fields overwrite
//     earlier ones where their ranges overlap.
//   - width: The canvas width in characters.
//
// RETURNS:
//   - The encoded line, always exactly `width` characters long.
//
// Values longer than their field are truncated; shorter values are
// left-justified and padded with spaces. Fields that fall partially outside
// the canvas are clipped at the canvas edge.
func Encode(fields []FieldSpec, width int) string {
	canvas := make([]rune, width)
	for i := range canvas {
		canvas[i] = ' '
	}

	for _, f := range fields {
		if f.Length <= 0 || f.Start < 1 || f.Start > width {
			continue
		}

		// Truncate or pad the value to the field length.
		cell := fit(f.Value, f.Length)

		// Write at the 1-based offset, clipping at the canvas edge.
		pos := f.Start - 1
		for i, r := range cell {
			if pos+i >= width {
				break
			}
			canvas[pos+i] = r
		}
	}

	return string(canvas)
}

// fit truncates or space-pads a value to exactly `length` runes, left-justified.
func fit(value string, length int) []rune {
	runes := []rune(value)
	if len(runes) > length {
		return runes[:length]
	}

	cell := make([]rune, length)
	copy(cell, runes)
	for i := len(runes); i < length; i++ {
		cell[i] = ' '
	}
	return cell
}

// checkWidth verifies the fixed-length post-condition for an encoded record.
func checkWidth(recordType, line string) (string, error) {
	if n := len([]rune(line)); n != Width {
		return "", &LengthError{RecordType: recordType, Got: n}
	}
	return line, nil
}
