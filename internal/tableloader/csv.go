// =============================================================================
// Bolle Export - CSV Loading
// =============================================================================
//
// CSV exports arrive with either ";" or "," as the delimiter depending on
// the locale of the machine that produced them, and nobody tells us which.
// The delimiter is sniffed from a sample of the file: ";" wins when it
// occurs more often than "," in the sample, otherwise ",".
//
// =============================================================================

package tableloader

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// sniffSampleSize is how many bytes of the file the delimiter sniffer reads.
const sniffSampleSize = 4096

// LoadCSV reads a delimited text file into a Table.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	table, err := ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	table.SourceFile = path
	return table, nil
}

// ParseCSV reads delimited text from a reader into a Table, sniffing the
// delimiter from the leading sample.
func ParseCSV(r io.Reader) (*Table, error) {
	buffered := bufio.NewReader(r)

	sample, err := buffered.Peek(sniffSampleSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read sample: %w", err)
	}

	reader := csv.NewReader(buffered)
	reader.Comma = sniffDelimiter(sample)

	// Input files are hand-exported and frequently ragged: tolerate
	// inconsistent field counts and sloppy quoting.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return fromRows(allRows, "", "")
}

// sniffDelimiter picks ";" or "," by counting occurrences in the sample.
func sniffDelimiter(sample []byte) rune {
	if bytes.Count(sample, []byte(";")) > bytes.Count(sample, []byte(",")) {
		return ';'
	}
	return ','
}
