// =============================================================================
// Bolle Export - Table Loader
// =============================================================================
//
// This module loads tabular shipment data from CSV or XLSX files into a
// common Table shape: an ordered header list plus rows as header -> value
// maps. The rest of the pipeline never cares which format the data came
// from.
//
// =============================================================================

package tableloader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table is the parsed tabular input.
type Table struct {
	// Headers contains the column names, in input order.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	Rows []map[string]string

	// SourceFile is the path the table was loaded from.
	SourceFile string

	// Sheet is the worksheet name the table came from, empty for CSV.
	Sheet string
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Column returns all values for one column, in row order.
func (t *Table) Column(header string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[header]
	}
	return values
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads a tabular file, dispatching on the file extension. Files with
// an unknown extension are tried as CSV first, then as XLSX, mirroring how
// operators feed the tool exports with mangled names.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return LoadCSV(path)
	case ".xlsx", ".xlsm", ".xls":
		return LoadXLSX(path)
	default:
		table, err := LoadCSV(path)
		if err == nil {
			return table, nil
		}
		table, xlsxErr := LoadXLSX(path)
		if xlsxErr != nil {
			return nil, fmt.Errorf("unrecognized table format: csv: %v; xlsx: %v", err, xlsxErr)
		}
		return table, nil
	}
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// fromRows builds a Table from raw rows: the first row is the header row,
// the rest are data. Empty rows are skipped, blank headers get positional
// names.
func fromRows(allRows [][]string, sourceFile, sheet string) (*Table, error) {
	if len(allRows) == 0 {
		return nil, fmt.Errorf("file is empty: %s", sourceFile)
	}

	headers := cleanHeaders(allRows[0])

	rows := make([]map[string]string, 0, len(allRows)-1)
	for _, raw := range allRows[1:] {
		if isRowEmpty(raw) {
			continue
		}

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(raw) {
				row[header] = strings.TrimSpace(raw[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{
		Headers:    headers,
		Rows:       rows,
		SourceFile: sourceFile,
		Sheet:      sheet,
	}, nil
}

// cleanHeaders trims header values and names blank headers positionally.
func cleanHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Colonna_%d", i+1)
		}
		headers[i] = h
	}
	return headers
}

// isRowEmpty reports whether a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
