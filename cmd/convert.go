// =============================================================================
// Bolle Export - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which runs the conversion
// pipeline for a single input file.
//
// COMMAND USAGE:
//   bolle-export convert --file <path> [flags]
//
// FLAGS:
//   --file     : Path to the input file (CSV or XLSX); required
//   --profile  : Export profile name (default "default")
//   --format   : Override the profile output format ("fixed" or "delimited")
//   --dry-run  : Run the pipeline without writing output or archiving input
//
// PROCESSING PIPELINE:
//   1. Load configuration and export profiles
//   2. Load the input table
//   3. Resolve columns, segment documents, encode fixed-width records
//   4. Write the output bytes and archive the input
//   5. Print a summary
//
// Conversion is synchronous: one file runs to completion before the summary
// is printed. Errors in column resolution or record layout abort the whole
// conversion; nothing partially emitted is trusted.
//
// =============================================================================

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/bolle-export/internal/config"
	"github.com/ginjaninja78/bolle-export/internal/exporter"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputFile is the path to the input file to convert.
var inputFile string

// profileName selects the export profile to apply.
var profileName string

// outputFormat overrides the profile's output format when set.
var outputFormat string

// dryRun runs the pipeline without writing output files.
var dryRun bool

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a shipment table to fixed-width bolla records",
	Long: `The convert command loads a tabular shipment file (CSV or XLSX),
detects the relevant columns and emits the export file. Two output formats
are supported, selected per profile or with --format:

  fixed      Rows are split into transport documents and written as
             fixed-width 128-character header/detail records.
  delimited  Every data row becomes one free-form line: product name,
             piece count and weight separated by configurable space runs.

In fixed format, rows before the first recognized document header and detail
rows missing their code or quantity are skipped silently; the aggregate skip
count is reported with --verbose.

On successful conversion:
  - The generated record file is placed in the output directory
  - The input file is moved to the input archive (unless disabled)

On error nothing is written and the input file stays where it was.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the convert command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	// --file flag: Path to the input file. Required.
	convertCmd.Flags().StringVar(
		&inputFile,
		"file",
		"",
		"Path to the input file (CSV or XLSX)",
	)
	convertCmd.MarkFlagRequired("file")

	// --profile flag: Export profile name.
	convertCmd.Flags().StringVar(
		&profileName,
		"profile",
		"default",
		"Export profile to apply (from the profiles directory)",
	)

	// --format flag: Override the profile's output format.
	convertCmd.Flags().StringVar(
		&outputFormat,
		"format",
		"",
		`Override the profile output format: "fixed" or "delimited"`,
	)

	// --dry-run flag: Run the pipeline without writing output files.
	convertCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the conversion without writing output or archiving input",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runConvert orchestrates the conversion of a single file.
func runConvert(cmd *cobra.Command) error {
	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== Bolle Export ===")

	// An explicitly named config file must exist; only the default path may
	// silently fall back to built-in defaults.
	loadConfig := config.LoadMainConfig
	if cmd.Root().PersistentFlags().Changed("config") {
		loadConfig = config.LoadMainConfigStrict
	}

	mainConfig, err := loadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}
	if verbose {
		mainConfig.LogLevel = "debug"
	}

	profiles, err := config.LoadProfiles(mainConfig.ProfilesDir)
	if err != nil {
		return fmt.Errorf("failed to load export profiles: %w", err)
	}

	profile, ok := profiles[profileName]
	if !ok {
		return fmt.Errorf("unknown profile %q (available: %s)", profileName, profileNames(profiles))
	}

	switch outputFormat {
	case "":
		// Keep the profile's format.
	case "fixed", "delimited":
		profile.OutputFormat = outputFormat
	default:
		return fmt.Errorf("unknown output format %q (valid: fixed, delimited)", outputFormat)
	}

	// =========================================================================
	// STEP 2: RUN THE PIPELINE
	// =========================================================================

	exp := exporter.New(inputFile, mainConfig, profile)
	exp.SetDryRun(dryRun)

	result := exp.Run()

	// =========================================================================
	// STEP 3: PRINT SUMMARY
	// =========================================================================

	if !result.Success {
		fmt.Printf("  ✗ %s: %v\n", result.FilePath, result.Error)
		return fmt.Errorf("conversion failed")
	}

	if result.OutputFile != "" {
		fmt.Printf("  ✓ %s -> %s\n", result.FilePath, result.OutputFile)
	} else {
		fmt.Printf("  ✓ %s (dry run)\n", result.FilePath)
	}

	fmt.Println("\n=== Conversion Complete ===")
	fmt.Printf("Rows scanned:    %d\n", result.Stats.RowsProcessed)
	fmt.Printf("Documents:       %d\n", result.Stats.Documents)
	fmt.Printf("Detail lines:    %d\n", result.Stats.DetailLines)
	if skipped := result.Stats.OrphanRowsSkipped + result.Stats.IncompleteRowsSkipped; skipped > 0 && verbose {
		fmt.Printf("Rows skipped:    %d (%d before first header, %d incomplete)\n",
			skipped, result.Stats.OrphanRowsSkipped, result.Stats.IncompleteRowsSkipped)
	}
	fmt.Printf("Time elapsed:    %s\n", result.Stats.ProcessingTime)

	return nil
}

// profileNames lists the available profile names for error messages.
func profileNames(profiles map[string]*config.ExportProfile) string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
