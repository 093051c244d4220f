package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row and column caps keep pathological spreadsheets from producing
// megabytes of pipe-joined noise.
const (
	xlsxMaxRows = 200
	xlsxMaxCols = 30
)

// decodeXLSX renders each sheet as a labeled block of pipe-joined rows, the
// shape the list extractors expect from tabular content.
func decodeXLSX(content []byte) (string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("open xlsx: %w", err)
	}
	defer wb.Close()

	var builder strings.Builder
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			continue
		}
		builder.WriteString(fmt.Sprintf("\n=== SHEET: %s ===\n", sheet))
		if len(rows) > xlsxMaxRows {
			rows = rows[:xlsxMaxRows]
		}
		for _, row := range rows {
			if len(row) > xlsxMaxCols {
				row = row[:xlsxMaxCols]
			}
			nonEmpty := false
			for _, cell := range row {
				if strings.TrimSpace(cell) != "" {
					nonEmpty = true
					break
				}
			}
			if !nonEmpty {
				continue
			}
			builder.WriteString(strings.Join(row, " | "))
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}
