// =============================================================================
// Bolle Export - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the exporter:
//   - Output file naming (placeholder expansion)
//   - Output writing
//   - Input archival (moving processed files)
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the input archive after successful processing
//   - Failed files remain in their original location
//   - Name collisions in the archive get a numeric suffix rather than
//     overwriting the previously archived file
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the exporter.
type FileManager struct {
	// OutputDir is the directory where output files are placed.
	OutputDir string

	// InputArchiveDir is the directory for archived input files.
	InputArchiveDir string
}

// NewFileManager creates a new FileManager with the specified directories.
func NewFileManager(outputDir, inputArchiveDir string) *FileManager {
	return &FileManager{
		OutputDir:       outputDir,
		InputArchiveDir: inputArchiveDir,
	}
}

// EnsureDirectories creates the managed directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.OutputDir, fm.InputArchiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// WriteOutput writes the export bytes under the output directory.
//
// PARAMETERS:
//   - fileName: The output file name (no directory part).
//   - data: The encoded export bytes.
//
// RETURNS:
//   - The full path of the written file.
//   - An error if the file cannot be written.
func (fm *FileManager) WriteOutput(fileName string, data []byte) (string, error) {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(fm.OutputDir, fileName)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return outputPath, nil
}

// =============================================================================
// INPUT ARCHIVAL
// =============================================================================

// ArchiveInput moves a processed input file into the archive directory.
//
// PARAMETERS:
//   - inputPath: The path of the processed input file.
//
// RETURNS:
//   - The path the file was moved to.
//   - An error if the file cannot be moved.
func (fm *FileManager) ArchiveInput(inputPath string) (string, error) {
	if err := os.MkdirAll(fm.InputArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	archivePath := uniquePath(filepath.Join(fm.InputArchiveDir, filepath.Base(inputPath)))
	if err := os.Rename(inputPath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive input file: %w", err)
	}

	return archivePath, nil
}

// uniquePath appends a numeric suffix until the path does not exist.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// =============================================================================
// FILE NAMING
// =============================================================================

// GenerateOutputFileName expands the output name format.
//
// PARAMETERS:
//   - format: The name format. Placeholders:
//     {base}      - the configured base name
//     {uuid}      - a random UUID
//     {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//   - base: The base name substituted for {base}.
//
// RETURNS:
//   - The generated file name, with a ".txt" extension enforced.
func GenerateOutputFileName(format, base string) string {
	fileName := format
	fileName = strings.ReplaceAll(fileName, "{base}", base)
	fileName = strings.ReplaceAll(fileName, "{uuid}", uuid.New().String())
	fileName = strings.ReplaceAll(fileName, "{timestamp}", time.Now().Format("20060102_150405"))

	if filepath.Ext(fileName) != ".txt" {
		fileName += ".txt"
	}
	return fileName
}
