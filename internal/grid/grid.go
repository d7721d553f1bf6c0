// =============================================================================
// Bolle Export - Text/Grid Round-Trip
// =============================================================================
//
// This module converts between the serialized multi-line fixed-width text
// and a one-character-per-cell grid used for cell-level editing, and back.
// The editing widget itself is presentation glue; the core guarantee lives
// here: an untouched grid reserializes to byte-identical text.
//
// DISPLAY GLYPH:
//   Fixed-width records are mostly spaces, which are invisible in a grid.
//   A display-only substitution may render spaces as a visible middle dot.
//   The substitution is view-only and is undone on reserialization, so it
//   must never collide with a character that legitimately appears in a
//   record.
//
// =============================================================================

package grid

import "strings"

// =============================================================================
// OPTIONS
// =============================================================================

// DefaultGlyph is the middle dot used to render spaces visibly. It sits
// outside the record character repertoire, so the substitution is invertible.
const DefaultGlyph = '·'

// Options controls the grid transcoding.
type Options struct {
	// Width is the fixed line width; every grid row has exactly Width cells.
	Width int

	// Glyph, when non-zero, is substituted for literal spaces on the way to
	// the grid and translated back to a space on the way out.
	Glyph rune
}

// =============================================================================
// TEXT -> GRID
// =============================================================================

// ToGrid splits text into a row-major grid, one character per cell.
//
// PARAMETERS:
//   - text: The serialized record text. A trailing newline does not produce
//     an extra row.
//   - opts: Width and optional display glyph.
//
// RETURNS:
//   - One row per line, each padded or truncated to exactly opts.Width cells.
func ToGrid(text string, opts Options) [][]string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		row := make([]string, opts.Width)

		for col := 0; col < opts.Width; col++ {
			r := ' '
			if col < len(runes) {
				r = runes[col]
			}
			if opts.Glyph != 0 && r == ' ' {
				r = opts.Glyph
			}
			row[col] = string(r)
		}

		rows[i] = row
	}

	return rows
}

// =============================================================================
// GRID -> TEXT
// =============================================================================

// FromGrid reserializes a grid back into record text.
//
// PARAMETERS:
//   - rows: The (possibly edited) grid.
//   - opts: Width and optional display glyph; must match the ToGrid call.
//
// RETURNS:
//   - The joined lines, trailing newline included. An empty grid yields "".
//
// Each cell collapses to a single character: an empty cell becomes a space,
// a multi-character cell keeps its first character. Display glyphs are
// translated back to literal spaces, which restores the exact byte layout
// for untouched cells.
func FromGrid(rows [][]string, opts Options) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	for _, row := range rows {
		for col := 0; col < opts.Width; col++ {
			r := ' '
			if col < len(row) && row[col] != "" {
				r = []rune(row[col])[0]
			}
			if opts.Glyph != 0 && r == opts.Glyph {
				r = ' '
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
