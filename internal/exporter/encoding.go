// =============================================================================
// Bolle Export - Output Encoding
// =============================================================================
//
// The downstream system ingests the export either as UTF-8 or as one of two
// legacy 8-bit code pages, depending on the installation. The record text is
// plain ASCII apart from whatever survives in descriptions, so the charmap
// encoders substitute anything unmappable instead of failing the download.
//
// =============================================================================

package exporter

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// EncodeText converts the record text into the output byte stream.
//
// PARAMETERS:
//   - text: The newline-joined record text.
//   - encodingName: "utf-8", "iso-8859-1" or "windows-1252" (aliases
//     "latin1" and "cp1252" accepted).
//
// RETURNS:
//   - The encoded bytes.
//   - An error for an unknown encoding name.
func EncodeText(text, encodingName string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encodingName)) {
	case "", "utf-8", "utf8":
		return []byte(text), nil

	case "iso-8859-1", "latin1":
		return encodeCharmap(text, charmap.ISO8859_1)

	case "windows-1252", "cp1252":
		return encodeCharmap(text, charmap.Windows1252)

	default:
		return nil, fmt.Errorf("unsupported output encoding: %q", encodingName)
	}
}

// encodeCharmap encodes text with the given code page, substituting
// unmappable characters.
func encodeCharmap(text string, cm *charmap.Charmap) ([]byte, error) {
	data, err := encoding.ReplaceUnsupported(cm.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("charmap encoding failed: %w", err)
	}
	return data, nil
}
