package sheet

import (
	"strconv"
	"strings"
)

// CoercePrice converts a cell into a validated positive price. Numeric cells
// are accepted as-is when positive. Textual cells are parsed after replacing
// the decimal comma, so "12,50" coerces to 12.5. Everything else is
// rejected. This is the single gate a price must pass before it can become
// part of an association.
func CoercePrice(cell Cell) (float64, bool) {
	switch cell.Kind {
	case CellNumber:
		if cell.Number > 0 {
			return cell.Number, true
		}
	case CellText:
		cleaned := strings.ReplaceAll(strings.TrimSpace(cell.Text), ",", ".")
		if value, err := strconv.ParseFloat(cleaned, 64); err == nil && value > 0 {
			return value, true
		}
	}
	return 0, false
}
