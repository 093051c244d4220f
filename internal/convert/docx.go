package convert

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// decodeDOCX reads word/document.xml out of the OOXML archive and collects
// the run text, one line per paragraph.
func decodeDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("docx archive has no word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	return paragraphText(rc)
}

// paragraphText walks the WordprocessingML token stream. Only w:t carries
// text; w:p and w:br mark line boundaries.
func paragraphText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var builder strings.Builder
	var line strings.Builder
	inText := false

	flush := func() {
		if s := strings.TrimSpace(line.String()); s != "" {
			builder.WriteString(s)
			builder.WriteString("\n")
		}
		line.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "br", "tab":
				line.WriteString(" ")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inText {
				line.Write(t)
			}
		}
	}
	flush()

	return builder.String(), nil
}
