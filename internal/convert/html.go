package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// decodeHTML strips markup and script blocks, keeping block-level structure
// as line breaks so heading detection still works downstream.
func decodeHTML(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var builder strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, th, div").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			builder.WriteString(text)
			builder.WriteString("\n")
		}
	})
	if builder.Len() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}

	return builder.String(), nil
}
