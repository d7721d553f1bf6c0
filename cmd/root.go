// =============================================================================
// Bolle Export - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'convert', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (bolle-export)
//   ├── convertCmd (bolle-export convert)
//   └── versionCmd (bolle-export version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "bolle-export",

	Short: "Bolle Export - Convert shipment tables to the fixed-width bolla format",

	Long: `Bolle Export converts tabular shipment data (CSV or XLSX) into the
fixed-width 128-character record format used for transport-document (bolla)
interchange.

Key Features:
  - Automatic column detection (description, article code, quantity, unit)
  - Document segmentation from "Rif. Doc. di trasporto" header rows
  - Byte-exact fixed-width header ("01") and detail ("02") records
  - Alternative free-form delimited output (name, pieces, weight)
  - Per-recipient export profiles (supplier/recipient codes, currency)
  - Output in UTF-8 or legacy 8-bit code pages

Example Usage:
  bolle-export convert --file righe_doc.xlsx        # Convert one file
  bolle-export convert --file export.csv --dry-run  # Validate without writing
  bolle-export convert --file export.csv --profile acme`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
