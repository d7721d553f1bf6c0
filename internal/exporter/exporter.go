// =============================================================================
// Bolle Export - Exporter Module
// =============================================================================
//
// This module orchestrates the conversion pipeline for a single input file,
// from table loading to the encoded output bytes.
//
// CONVERSION PIPELINE:
//   1. Load the input table (CSV or XLSX)
//   2. Resolve the role columns (description, code, quantity, unit, weight)
//   3. Build the output text per the profile's output format:
//      - "fixed": segment rows into documents and encode fixed-width
//        records, joined with a trailing newline
//      - "delimited": emit one name/pieces/weight line per data row
//   4. Encode the text into bytes per the configured character set
//   5. Write the output file and archive the input
//
// The pipeline is synchronous and pure up to step 4: converting the same
// table twice produces byte-identical text, which the preview session relies
// on to detect unchanged source data.
//
// =============================================================================

package exporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/ginjaninja78/bolle-export/internal/columns"
	"github.com/ginjaninja78/bolle-export/internal/config"
	"github.com/ginjaninja78/bolle-export/internal/delimited"
	"github.com/ginjaninja78/bolle-export/internal/normalize"
	"github.com/ginjaninja78/bolle-export/internal/segmenter"
	"github.com/ginjaninja78/bolle-export/internal/tableloader"
	"github.com/ginjaninja78/bolle-export/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the generated export file.
	// This is empty if processing failed or on a dry run.
	OutputFile string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about the processing.
type Stats struct {
	// RowsProcessed is the number of input rows scanned.
	RowsProcessed int

	// Documents is the number of header records emitted.
	Documents int

	// DetailLines is the number of detail records emitted.
	DetailLines int

	// OrphanRowsSkipped counts detail rows seen before the first document
	// header. Skips are silent per row; this aggregate exists for
	// diagnostics.
	OrphanRowsSkipped int

	// IncompleteRowsSkipped counts detail rows missing code or quantity.
	IncompleteRowsSkipped int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// EXPORTER STRUCTURE
// =============================================================================

// Exporter handles the conversion of a single input file.
type Exporter struct {
	// inputPath is the path to the input file.
	inputPath string

	// mainConfig is the main application configuration.
	mainConfig *config.MainConfig

	// profile is the export profile for the target recipient.
	profile *config.ExportProfile

	// dryRun skips writing and archival when set.
	dryRun bool

	// logger is used for logging.
	logger Logger
}

// New creates a new Exporter instance.
//
// PARAMETERS:
//   - inputPath: The path to the input file.
//   - mainConfig: The main application configuration.
//   - profile: The export profile to apply.
func New(inputPath string, mainConfig *config.MainConfig, profile *config.ExportProfile) *Exporter {
	return &Exporter{
		inputPath:  inputPath,
		mainConfig: mainConfig,
		profile:    profile,
		logger:     NewStdLogger(mainConfig.LogLevel),
	}
}

// SetDryRun toggles dry-run mode: the pipeline runs but nothing is written
// or archived.
func (e *Exporter) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// SetLogger replaces the logger.
func (e *Exporter) SetLogger(logger Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline for the file.
func (e *Exporter) Run() Result {
	startTime := time.Now()
	result := Result{
		FilePath: e.inputPath,
	}

	e.logger.Info("Processing file: %s", e.inputPath)

	// =========================================================================
	// STEP 1: LOAD INPUT TABLE
	// =========================================================================

	table, err := tableloader.Load(e.inputPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to load table: %w", err)
		return result
	}

	if table.Sheet != "" {
		e.logger.Debug("Selected sheet: %s", table.Sheet)
	}
	e.logger.Debug("Loaded %d rows, %d columns", table.RowCount(), len(table.Headers))

	// =========================================================================
	// STEP 2-3: CONVERT TO OUTPUT TEXT
	// =========================================================================

	text, stats, err := Convert(table, e.profile)
	if err != nil {
		result.Error = err
		return result
	}
	result.Stats = stats
	result.Stats.ProcessingTime = time.Since(startTime)

	e.logger.Debug("Emitted %d header(s) and %d detail line(s)", stats.Documents, stats.DetailLines)
	if skipped := stats.OrphanRowsSkipped + stats.IncompleteRowsSkipped; skipped > 0 {
		e.logger.Debug("Skipped %d row(s): %d before first header, %d incomplete",
			skipped, stats.OrphanRowsSkipped, stats.IncompleteRowsSkipped)
	}

	// =========================================================================
	// STEP 4: ENCODE OUTPUT BYTES
	// =========================================================================

	data, err := EncodeText(text, e.mainConfig.Encoding)
	if err != nil {
		result.Error = fmt.Errorf("failed to encode output: %w", err)
		return result
	}

	if e.dryRun {
		e.logger.Info("Dry run: skipping output write and archival")
		result.Success = true
		return result
	}

	// =========================================================================
	// STEP 5: WRITE OUTPUT AND ARCHIVE INPUT
	// =========================================================================

	fm := utils.NewFileManager(e.mainConfig.OutputDir, e.mainConfig.InputArchiveDir)

	fileName := utils.GenerateOutputFileName(e.mainConfig.OutputNameFormat, e.mainConfig.OutputBaseName)
	outputPath, err := fm.WriteOutput(fileName, data)
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.OutputFile = outputPath
	e.logger.Info("Wrote output to: %s", outputPath)

	if e.mainConfig.ShouldArchive() {
		if _, err := fm.ArchiveInput(e.inputPath); err != nil {
			// Archival failure does not invalidate the produced output.
			e.logger.Warn("Failed to archive input file: %v", err)
		}
	}

	result.Success = true
	return result
}

// =============================================================================
// PURE CONVERSION
// =============================================================================

// Convert runs the table-to-text pipeline without touching the filesystem,
// dispatching on the profile's output format.
//
// PARAMETERS:
//   - table: The loaded input table.
//   - profile: The export profile to apply.
//
// RETURNS:
//   - The output text: fixed-width records joined with a trailing newline,
//     or delimited lines without one.
//   - Scan statistics.
//   - A columns.MissingColumnsError, segmenter.ErrEmptyResult or record
//     layout error; all are fatal to the conversion.
//
// Converting the same table with the same profile twice is guaranteed to
// produce identical text.
func Convert(table *tableloader.Table, profile *config.ExportProfile) (string, Stats, error) {
	if strings.EqualFold(profile.OutputFormat, "delimited") {
		return convertDelimited(table, profile)
	}
	return convertFixed(table, profile)
}

// convertFixed builds the fixed-width record stream.
func convertFixed(table *tableloader.Table, profile *config.ExportProfile) (string, Stats, error) {
	roles, err := columns.Resolve(table.Headers)
	if err != nil {
		return "", Stats{}, err
	}

	rows := make([]segmenter.Row, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = segmenter.Row{
			Description: row[roles.Description],
			Code:        row[roles.Code],
			Quantity:    row[roles.Quantity],
		}
		if roles.Unit != "" {
			rows[i].Unit = row[roles.Unit]
		}
	}

	lines, segStats, err := segmenter.Segment(rows, segmenter.Options{
		SupplierCode:  profile.SupplierCode,
		RecipientCode: profile.RecipientCode,
		Currency:      profile.Currency,
		ProtocolTag:   profile.ProtocolTag,
		CleanMode:     normalize.ParseMode(profile.DescriptionCleanMode),
	})
	if err != nil {
		return "", Stats{}, err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String(), Stats{
		RowsProcessed:         len(table.Rows),
		Documents:             segStats.Documents,
		DetailLines:           segStats.DetailLines,
		OrphanRowsSkipped:     segStats.OrphanRowsSkipped,
		IncompleteRowsSkipped: segStats.IncompleteRowsSkipped,
	}, nil
}

// convertDelimited builds the free-form delimited export: no document
// segmentation, every data row becomes one line.
func convertDelimited(table *tableloader.Table, profile *config.ExportProfile) (string, Stats, error) {
	roles, err := columns.ResolveDelimited(table.Headers)
	if err != nil {
		return "", Stats{}, err
	}

	if table.RowCount() == 0 {
		return "", Stats{}, fmt.Errorf("no rows to export: the file has no data rows")
	}

	rows := make([]delimited.Row, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = delimited.Row{
			Name:   row[roles.Description],
			Pieces: row[roles.Quantity],
			Weight: row[roles.Weight],
		}
	}

	text := delimited.Build(rows, profile.DelimitedOptions())
	return text, Stats{
		RowsProcessed: len(table.Rows),
		DetailLines:   len(rows),
	}, nil
}
