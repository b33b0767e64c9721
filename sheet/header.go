package sheet

import "strings"

// Header carries the active column indices for one sheet section. It stays
// valid until a later row re-declares the columns; a malformed header row
// must not erase it.
type Header struct {
	Description int
	Price       int
	Brand       int // -1 when the section declares no brand column
	Unit        int // -1 when the section declares no unit column
}

// HasBrand reports whether the section declared a brand column.
func (h Header) HasBrand() bool {
	return h.Brand >= 0
}

// HasUnit reports whether the section declared a unit column.
func (h Header) HasUnit() bool {
	return h.Unit >= 0
}

var (
	headerPriceMarkers = []string{"UNIT", "PRECO", "PREÇO", "VENDA", "VALOR"}
	priceColumnMarkers = []string{"UNIT", "UNITARIO", "VENDA", "PREÇO", "PRECO", "VALOR"}
)

// IsHeaderRow reports whether a row plausibly declares column roles: its
// upper-cased concatenation names a description column and at least one
// price marker. Header-like rows are consumed by the locator and never
// reach the row extractor, even when their columns fail to bind.
func IsHeaderRow(row Row) bool {
	var combined strings.Builder
	for _, cell := range row {
		combined.WriteString(strings.ToUpper(cell.String()))
	}
	joined := combined.String()
	return strings.Contains(joined, "DESCRI") && containsAny(joined, headerPriceMarkers)
}

// BindColumns derives column indices from a header row, recording the first
// column matching each role. A column mentioning TOTAL only qualifies as the
// price column when it also mentions UNIT, so a "VALOR TOTAL" column cannot
// shadow the unit price. Binding succeeds only when both the description and
// price columns resolve.
func BindColumns(row Row) (Header, bool) {
	if !IsHeaderRow(row) {
		return Header{}, false
	}

	header := Header{Description: -1, Price: -1, Brand: -1, Unit: -1}
	for i, cell := range row {
		text := strings.ToUpper(cell.String())
		if header.Description < 0 && strings.Contains(text, "DESCRI") {
			header.Description = i
		}
		if header.Brand < 0 && strings.Contains(text, "MARCA") {
			header.Brand = i
		}
		// A measurement-unit column mentions UNIT alone; a "VALOR UNIT"
		// column is a price column, not a unit column.
		if header.Unit < 0 && strings.Contains(text, "UNIT") && !strings.Contains(text, "VALOR") {
			header.Unit = i
		}
		if header.Price < 0 && containsAny(text, priceColumnMarkers) {
			if !strings.Contains(text, "TOTAL") || strings.Contains(text, "UNIT") {
				header.Price = i
			}
		}
	}

	if header.Description < 0 || header.Price < 0 {
		return Header{}, false
	}
	return header, true
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
