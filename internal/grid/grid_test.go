package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/bolle-export/internal/record"
)

// sampleText builds a plausible two-line record text at full width.
func sampleText(t *testing.T) string {
	t.Helper()

	header, err := record.Header{
		Sequence:       1,
		DocumentNumber: "123",
		DocumentDate:   "240201",
		SupplierCode:   "SUP001",
		RecipientCode:  "REC42",
		Currency:       "EUR",
		ProtocolTag:    "DSV",
	}.Encode()
	require.NoError(t, err)

	detail, err := record.Detail{
		Sequence:    1,
		ArticleCode: "45",
		Description: "Olio",
		Unit:        "PZ",
		Quantity:    3.5,
	}.Encode()
	require.NoError(t, err)

	return header + "\n" + detail + "\n"
}

func TestRoundTripIsIdentity(t *testing.T) {
	text := sampleText(t)

	plain := Options{Width: record.Width}
	assert.Equal(t, text, FromGrid(ToGrid(text, plain), plain))

	glyphed := Options{Width: record.Width, Glyph: DefaultGlyph}
	assert.Equal(t, text, FromGrid(ToGrid(text, glyphed), glyphed))
}

func TestToGridShapesRows(t *testing.T) {
	rows := ToGrid(sampleText(t), Options{Width: record.Width})
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, record.Width)
	}
	assert.Equal(t, "0", rows[0][0])
	assert.Equal(t, "1", rows[0][1])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
}

func TestToGridRendersSpacesAsGlyph(t *testing.T) {
	rows := ToGrid("ab \n", Options{Width: 4, Glyph: DefaultGlyph})
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "b", "·", "·"}, rows[0])
}

func TestToGridPadsAndTruncates(t *testing.T) {
	rows := ToGrid("abcdef\nxy\n", Options{Width: 4})
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b", "c", "d"}, rows[0])
	assert.Equal(t, []string{"x", "y", " ", " "}, rows[1])
}

func TestToGridEmptyText(t *testing.T) {
	assert.Nil(t, ToGrid("", Options{Width: record.Width}))
}

func TestFromGridNormalizesCells(t *testing.T) {
	rows := [][]string{{"a", "", "·", "bc"}}
	got := FromGrid(rows, Options{Width: 4, Glyph: DefaultGlyph})
	assert.Equal(t, "a  b\n", got)
}

func TestFromGridPadsShortRows(t *testing.T) {
	got := FromGrid([][]string{{"a"}}, Options{Width: 4})
	assert.Equal(t, "a   \n", got)
}

func TestFromGridEmptyGrid(t *testing.T) {
	assert.Equal(t, "", FromGrid(nil, Options{Width: record.Width}))
}

func TestEditSurvivesRoundTrip(t *testing.T) {
	opts := Options{Width: record.Width, Glyph: DefaultGlyph}
	rows := ToGrid(sampleText(t), opts)

	rows[1][7] = "9" // overwrite the first article-code cell

	text := FromGrid(rows, opts)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, lines[1], record.Width)
	assert.Equal(t, byte('9'), lines[1][7])
}
