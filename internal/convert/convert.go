// Package convert turns uploaded document bytes into raw text for the
// extraction engine. Each format has one decoder; Decode dispatches on the
// declared content type or the filename extension and fails with
// ErrUnreadable when no decoder produces usable text.
package convert

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnreadable means no decoder produced usable text for a document. It is
// the only failure the analysis pipeline propagates; a readable document
// with no extractable fields is not an error.
var ErrUnreadable = errors.New("unreadable document")

// minTextLen guards against decoders that "succeed" with a few stray bytes.
const minTextLen = 20

// Decode converts document bytes to text based on the declared content type
// or, failing that, the filename extension.
func Decode(filename, contentType string, data []byte) (string, error) {
	name := strings.ToLower(strings.TrimSpace(filename))
	ctype := strings.ToLower(strings.TrimSpace(contentType))

	var (
		text string
		err  error
	)
	switch {
	case ctype == "application/pdf" || strings.HasSuffix(name, ".pdf"):
		text, err = decodePDF(data)
	case ctype == "application/vnd.openxmlformats-officedocument.wordprocessingml.document" || strings.HasSuffix(name, ".docx"):
		text, err = decodeDOCX(data)
	case ctype == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" || strings.HasSuffix(name, ".xlsx"):
		text, err = decodeXLSX(data)
	case ctype == "text/html" || strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm"):
		text, err = decodeHTML(data)
	case strings.HasPrefix(ctype, "text/") || hasTextExtension(name):
		text, err = decodePlainText(data)
	default:
		return "", fmt.Errorf("%w: unsupported format %q (%s)", ErrUnreadable, filename, contentType)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, filename, err)
	}

	text = strings.TrimSpace(text)
	if len(text) < minTextLen {
		return "", fmt.Errorf("%w: %s: decoded text too short (%d chars)", ErrUnreadable, filename, len(text))
	}
	return text, nil
}

func hasTextExtension(name string) bool {
	for _, ext := range []string{".txt", ".md", ".csv", ".json", ".log"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
