package tableloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCSVCommaDelimited(t *testing.T) {
	input := "Descrizione,Codice,Qta\nOlio,45,\"3,5\"\nPasta,10,2\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Descrizione", "Codice", "Qta"}, table.Headers)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Olio", table.Rows[0]["Descrizione"])
	assert.Equal(t, "3,5", table.Rows[0]["Qta"])
	assert.Equal(t, []string{"45", "10"}, table.Column("Codice"))
}

func TestParseCSVSniffsSemicolon(t *testing.T) {
	input := "Descrizione;Codice;Qta\nOlio, extra vergine;45;3,5\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Descrizione", "Codice", "Qta"}, table.Headers)
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "Olio, extra vergine", table.Rows[0]["Descrizione"])
	assert.Equal(t, "3,5", table.Rows[0]["Qta"])
}

func TestParseCSVSkipsEmptyRowsAndPadsShortOnes(t *testing.T) {
	input := "Descrizione,Codice,Qta\n,,\nOlio,45\n  \nPasta,10,2\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "", table.Rows[0]["Qta"])
	assert.Equal(t, "2", table.Rows[1]["Qta"])
}

func TestParseCSVNamesBlankHeaders(t *testing.T) {
	input := "Descrizione,,Qta\nOlio,45,2\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Descrizione", "Colonna_2", "Qta"}, table.Headers)
	assert.Equal(t, "45", table.Rows[0]["Colonna_2"])
}

func TestParseCSVTrimsCellValues(t *testing.T) {
	input := "Descrizione;Codice;Qta\n Olio ; 45 ;2\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Olio", table.Rows[0]["Descrizione"])
	assert.Equal(t, "45", table.Rows[0]["Codice"])
}

func TestParseCSVEmptyInput(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ';', sniffDelimiter([]byte("a;b;c\n1;2;3")))
	assert.Equal(t, ',', sniffDelimiter([]byte("a,b,c\n1,2,3")))
	// A tie keeps the comma.
	assert.Equal(t, ',', sniffDelimiter([]byte("a;b,c")))
	assert.Equal(t, ',', sniffDelimiter(nil))
}

func TestSelectSheet(t *testing.T) {
	cases := []struct {
		name   string
		sheets []string
		want   string
	}{
		{name: "preferred name", sheets: []string{"Riepilogo", "Righe documento"}, want: "Righe documento"},
		{name: "compact name", sheets: []string{"Foglio1", "RigheDoc"}, want: "RigheDoc"},
		{name: "fallback to first", sheets: []string{"Foglio1", "Foglio2"}, want: "Foglio1"},
		{name: "no sheets", sheets: nil, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SelectSheet(tc.sheets))
		})
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	path := writeTemp(t, "righe.csv", "Descrizione,Codice,Qta\nOlio,45,2\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, table.SourceFile)
	assert.Empty(t, table.Sheet)
	assert.Equal(t, 1, table.RowCount())
}

func TestLoadUnknownExtensionFallsBackToCSV(t *testing.T) {
	path := writeTemp(t, "righe.dat", "Descrizione;Codice;Qta\nOlio;45;2\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.RowCount())
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := "Righe documento"
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Descrizione", "Codice", "Qta"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Olio", "45", "3,5"}))

	path := filepath.Join(t.TempDir(), "righe.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := LoadXLSX(path)
	require.NoError(t, err)

	assert.Equal(t, sheet, table.Sheet)
	assert.Equal(t, []string{"Descrizione", "Codice", "Qta"}, table.Headers)
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "Olio", table.Rows[0]["Descrizione"])
	assert.Equal(t, "3,5", table.Rows[0]["Qta"])
}

func TestLoadXLSXMissingFile(t *testing.T) {
	_, err := LoadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}
