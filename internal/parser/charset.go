package parser

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// NewUTF8Reader wraps an io.Reader with character encoding detection and conversion to UTF-8.
//
// The charset is detected from:
// 1. Byte order marks (BOM)
// 2. The charset parameter of contentType, when given
// 3. Heuristic detection (valid UTF-8 stays UTF-8, otherwise Windows-1252)
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(body, contentType)
}

// DecodeSubtitle converts raw subtitle bytes to a UTF-8 string.
// A leading byte order mark selects the encoding and is removed. A body that is
// valid UTF-8 as a whole is returned as is; only then do the content type and
// heuristics of NewUTF8Reader apply, since those only sniff the first KiB.
func DecodeSubtitle(data []byte, contentType string) (string, error) {
	if hasBOM(data) {
		return DecodeUTF8(data)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	reader, err := NewUTF8Reader(bytes.NewReader(data), contentType)
	if err != nil {
		return "", fmt.Errorf("failed to detect subtitle charset: %w", err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to decode subtitle: %w", err)
	}
	return string(decoded), nil
}

// DecodeUTF8 decodes data as UTF-8, removing a byte order mark and replacing invalid sequences.
// A UTF-16 byte order mark still switches the decoder.
func DecodeUTF8(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode subtitle: %w", err)
	}
	return string(decoded), nil
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF8) || bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE)
}
