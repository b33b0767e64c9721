package sheet

import "strings"

// DefaultPreviewRows bounds how many data rows a preview carries.
const DefaultPreviewRows = 10

var previewKeywords = []string{"descri", "item", "quant", "valor", "unit", "preço"}

// Preview is a compact JSON-friendly view of one workbook: the first
// header-like row and the data rows that follow it.
type Preview struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// BuildPreview probes non-empty rows for common header keywords and returns
// the first hit as the header with up to limit following rows. When no row
// matches, the first non-empty row is treated as the header.
func BuildPreview(rows []Row, limit int) Preview {
	if limit <= 0 {
		limit = DefaultPreviewRows
	}

	populated := make([]Row, 0, len(rows))
	for _, row := range rows {
		if !row.IsEmpty() {
			populated = append(populated, row)
		}
	}
	if len(populated) == 0 {
		return Preview{Headers: []string{}, Rows: [][]string{}}
	}

	headerIndex := 0
	for i, row := range populated {
		joined := strings.ToLower(rowText(row))
		if containsAny(joined, previewKeywords) {
			headerIndex = i
			break
		}
	}

	preview := Preview{Headers: rowStrings(populated[headerIndex]), Rows: [][]string{}}
	for _, row := range populated[headerIndex+1:] {
		if len(preview.Rows) == limit {
			break
		}
		preview.Rows = append(preview.Rows, rowStrings(row))
	}
	return preview
}

func rowText(row Row) string {
	parts := make([]string, 0, len(row))
	for _, cell := range row {
		if cell.Kind != CellEmpty {
			parts = append(parts, cell.String())
		}
	}
	return strings.Join(parts, " ")
}

func rowStrings(row Row) []string {
	values := make([]string, len(row))
	for i, cell := range row {
		values[i] = cell.String()
	}
	return values
}
