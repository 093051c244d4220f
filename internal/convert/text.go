package convert

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decodePlainText tries UTF-8, then UTF-16, then Latin-1. UTF-16 is only
// attempted when a BOM or embedded NUL bytes point to it; otherwise any
// even-length Latin-1 payload would "decode" into CJK garbage. Latin-1
// itself never fails, so it is the terminal fallback.
func decodePlainText(content []byte) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}

	if looksUTF16(content) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if decoded, err := dec.Bytes(content); err == nil && utf8.Valid(decoded) {
			return string(decoded), nil
		}
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return "", errors.New("undecodable text payload")
	}
	return string(decoded), nil
}

func looksUTF16(content []byte) bool {
	if len(content) >= 2 {
		if (content[0] == 0xFF && content[1] == 0xFE) || (content[0] == 0xFE && content[1] == 0xFF) {
			return true
		}
	}
	return bytes.IndexByte(content, 0x00) != -1
}
