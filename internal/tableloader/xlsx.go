// =============================================================================
// Bolle Export - XLSX Loading
// =============================================================================
//
// XLSX workbooks from the document system carry several sheets; the one with
// the shipment rows is conventionally named something like "Righe documento"
// or "RigheDoc". Sheet selection therefore prefers the first sheet whose
// normalized name contains both "righe" and "doc", falling back to the first
// sheet.
//
// =============================================================================

package tableloader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/bolle-export/internal/columns"
)

// LoadXLSX reads a workbook into a Table.
func LoadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := SelectSheet(f.GetSheetList())
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets: %s", path)
	}

	allRows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	table, err := fromRows(allRows, path, sheet)
	if err != nil {
		return nil, err
	}

	return table, nil
}

// SelectSheet picks the sheet holding the shipment rows: the first whose
// normalized name contains both "righe" and "doc", else the first sheet.
// Returns "" for an empty sheet list.
func SelectSheet(sheets []string) string {
	for _, name := range sheets {
		normalized := columns.NormalizeName(name)
		if strings.Contains(normalized, "righe") && strings.Contains(normalized, "doc") {
			return name
		}
	}

	if len(sheets) > 0 {
		return sheets[0]
	}
	return ""
}
