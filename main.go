// =============================================================================
// Bolle Export - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Bolle Export CLI application. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   bolle-export convert --file <path>  - Convert a shipment table
//   bolle-export version                - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : Core business logic (not for external import)
//   - pkg/        : Shared utilities
//   - profiles/   : Per-recipient export profiles (YAML)
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/bolle-export/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
