package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/bolle-export/internal/columns"
	"github.com/ginjaninja78/bolle-export/internal/config"
	"github.com/ginjaninja78/bolle-export/internal/record"
	"github.com/ginjaninja78/bolle-export/internal/segmenter"
	"github.com/ginjaninja78/bolle-export/internal/tableloader"
)

// sampleCSV is a small but representative shipment export: two documents,
// one orphan row, one incomplete row.
const sampleCSV = `Descrizione;Codice;Qta;U.M.
Riga orfana;99;1;
** Rif. Doc. di trasporto 123 del 01/02/2024;;;
Olio (6 pz);45;3,5;
Pasta di semola;10;2;PZ
Senza quantita;11;;
Rif. Doc. di trasporto 124 del 02/02/2024;;;
Mozzarella di bufala;20;1,5;KG
`

func sampleProfile() *config.ExportProfile {
	return &config.ExportProfile{
		ProfileName:          "test",
		SupplierCode:         "SUP001",
		RecipientCode:        "REC42",
		Currency:             "EUR",
		ProtocolTag:          "DSV",
		DescriptionCleanMode: "base",
	}
}

func sampleTable(t *testing.T) *tableloader.Table {
	t.Helper()
	table, err := tableloader.ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	return table
}

func TestConvertEndToEnd(t *testing.T) {
	text, stats, err := Convert(sampleTable(t), sampleProfile())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 5)
	for i, line := range lines {
		assert.Len(t, line, record.Width, "line %d", i)
	}

	assert.True(t, strings.HasPrefix(lines[0], "01"))
	assert.True(t, strings.HasPrefix(lines[1], "02"))
	assert.True(t, strings.HasPrefix(lines[2], "02"))
	assert.True(t, strings.HasPrefix(lines[3], "01"))
	assert.True(t, strings.HasPrefix(lines[4], "02"))

	assert.Equal(t, "123    ", lines[0][20:27])
	assert.Equal(t, "240201", lines[0][27:33])
	assert.Equal(t, "124    ", lines[3][20:27])
	assert.Equal(t, "240202", lines[3][27:33])

	// "Olio (6 pz)": unit inferred from the raw text, count stripped.
	assert.Equal(t, "Olio"+strings.Repeat(" ", 26), lines[1][22:52])
	assert.Equal(t, "PZ", lines[1][52:54])
	assert.Equal(t, "0000003500", lines[1][54:64])

	assert.Equal(t, 7, stats.RowsProcessed)
	assert.Equal(t, 2, stats.Documents)
	assert.Equal(t, 3, stats.DetailLines)
	assert.Equal(t, 1, stats.OrphanRowsSkipped)
	assert.Equal(t, 1, stats.IncompleteRowsSkipped)
}

func TestConvertIsDeterministic(t *testing.T) {
	table := sampleTable(t)
	profile := sampleProfile()

	first, _, err := Convert(table, profile)
	require.NoError(t, err)
	second, _, err := Convert(table, profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConvertMissingColumns(t *testing.T) {
	table, err := tableloader.ParseCSV(strings.NewReader("Foo;Bar\n1;2\n"))
	require.NoError(t, err)

	_, _, err = Convert(table, sampleProfile())
	var missingErr *columns.MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
}

func TestConvertEmptyResult(t *testing.T) {
	table, err := tableloader.ParseCSV(strings.NewReader("Descrizione;Codice;Qta\nNessun documento;1;2\n"))
	require.NoError(t, err)

	_, _, err = Convert(table, sampleProfile())
	assert.ErrorIs(t, err, segmenter.ErrEmptyResult)
}

func TestConvertDelimited(t *testing.T) {
	table, err := tableloader.ParseCSV(strings.NewReader(
		"Nome prodotto;Pezzi;Kg\nOlio extra vergine;6;3,5\nPasta;12;1.25\n"))
	require.NoError(t, err)

	profile := sampleProfile()
	profile.OutputFormat = "delimited"

	text, stats, err := Convert(table, profile)
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Olio extra vergine 6"+strings.Repeat(" ", 26)+"3.500", lines[0])
	assert.Equal(t, "Pasta 12"+strings.Repeat(" ", 26)+"1.250", lines[1])
	assert.False(t, strings.HasSuffix(text, "\n"))

	assert.Equal(t, 2, stats.RowsProcessed)
	assert.Equal(t, 2, stats.DetailLines)
	assert.Zero(t, stats.Documents)
}

func TestConvertDelimitedCustomLayout(t *testing.T) {
	table, err := tableloader.ParseCSV(strings.NewReader("Nome;Pezzi;Peso\nOlio;6;3,5\n"))
	require.NoError(t, err)

	one, two := 3, 2
	decimals := 1
	profile := sampleProfile()
	profile.OutputFormat = "delimited"
	profile.NameToPiecesSpaces = &one
	profile.PiecesToWeightSpaces = &two
	profile.WeightDecimals = &decimals
	profile.WeightDecimalSeparator = ","

	text, _, err := Convert(table, profile)
	require.NoError(t, err)
	assert.Equal(t, "Olio   6  3,5", text)
}

func TestConvertDelimitedWeightFallsBackToLastColumn(t *testing.T) {
	table, err := tableloader.ParseCSV(strings.NewReader("Descrizione;Qta;Totale\nOlio;6;2,5\n"))
	require.NoError(t, err)

	profile := sampleProfile()
	profile.OutputFormat = "delimited"

	text, _, err := Convert(table, profile)
	require.NoError(t, err)
	assert.Equal(t, "Olio 6"+strings.Repeat(" ", 26)+"2.500", text)
}

func TestConvertDelimitedNeedsNoCodeColumn(t *testing.T) {
	// The same headers fail fixed-format resolution but satisfy delimited.
	table, err := tableloader.ParseCSV(strings.NewReader("Nome;Pezzi;Kg\nOlio;6;3,5\n"))
	require.NoError(t, err)

	_, _, err = Convert(table, sampleProfile())
	var missingErr *columns.MissingColumnsError
	require.ErrorAs(t, err, &missingErr)

	profile := sampleProfile()
	profile.OutputFormat = "delimited"
	_, _, err = Convert(table, profile)
	require.NoError(t, err)
}

func testMainConfig(t *testing.T) *config.MainConfig {
	t.Helper()
	base := t.TempDir()
	return &config.MainConfig{
		OutputDir:        filepath.Join(base, "output"),
		InputArchiveDir:  filepath.Join(base, "archive"),
		OutputNameFormat: "{base}_{timestamp}.txt",
		OutputBaseName:   "bolle_export",
		Encoding:         "utf-8",
		LogLevel:         "error",
	}
}

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "righe.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestRunWritesOutputAndArchivesInput(t *testing.T) {
	cfg := testMainConfig(t)
	inputPath := writeInput(t, t.TempDir())

	result := New(inputPath, cfg, sampleProfile()).Run()
	require.NoError(t, result.Error)
	require.True(t, result.Success)

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(filepath.Base(result.OutputFile), "bolle_export_"))
	assert.Equal(t, ".txt", filepath.Ext(result.OutputFile))

	// The input moved into the archive.
	_, err = os.Stat(inputPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.InputArchiveDir, "righe.csv"))
	assert.NoError(t, err)

	assert.Equal(t, 2, result.Stats.Documents)
	assert.Equal(t, 3, result.Stats.DetailLines)
}

func TestRunArchiveDisabled(t *testing.T) {
	cfg := testMainConfig(t)
	noArchive := false
	cfg.ArchiveOnSuccess = &noArchive
	inputPath := writeInput(t, t.TempDir())

	result := New(inputPath, cfg, sampleProfile()).Run()
	require.NoError(t, result.Error)

	_, err := os.Stat(inputPath)
	assert.NoError(t, err)
}

func TestRunDryRun(t *testing.T) {
	cfg := testMainConfig(t)
	inputPath := writeInput(t, t.TempDir())

	e := New(inputPath, cfg, sampleProfile())
	e.SetDryRun(true)
	result := e.Run()

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Empty(t, result.OutputFile)

	// Nothing written, nothing archived.
	entries, err := os.ReadDir(cfg.OutputDir)
	if err == nil {
		assert.Empty(t, entries)
	}
	_, err = os.Stat(inputPath)
	assert.NoError(t, err)

	assert.Equal(t, 2, result.Stats.Documents)
}

func TestRunMissingInputFile(t *testing.T) {
	cfg := testMainConfig(t)

	result := New(filepath.Join(t.TempDir(), "nope.csv"), cfg, sampleProfile()).Run()
	assert.False(t, result.Success)
	require.Error(t, result.Error)
	assert.Empty(t, result.OutputFile)
}

func TestRunConversionFailureLeavesInput(t *testing.T) {
	cfg := testMainConfig(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "righe.csv")
	require.NoError(t, os.WriteFile(path, []byte("Foo;Bar\n1;2\n"), 0o644))

	result := New(path, cfg, sampleProfile()).Run()
	assert.False(t, result.Success)
	require.Error(t, result.Error)

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
