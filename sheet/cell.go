package sheet

import (
	"strconv"
	"strings"
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one spreadsheet value with its decoded semantic type.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Row is an ordered sequence of cells. Rows may be ragged: a row can be
// shorter than the widest row in the sheet.
type Row []Cell

func TextCell(value string) Cell {
	return Cell{Kind: CellText, Text: value}
}

func NumberCell(value float64) Cell {
	return Cell{Kind: CellNumber, Number: value}
}

// CellFromRaw classifies a raw cell value. Blank values are empty, values
// that parse as a decimal number are numeric, everything else is text.
func CellFromRaw(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellEmpty}
	}
	if number, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Number: number}
	}
	return Cell{Kind: CellText, Text: raw}
}

// String returns the textual form of the cell, used for marker scanning and
// previews. Empty cells render as the empty string.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// IsEmpty reports whether the row holds no value in any cell.
func (r Row) IsEmpty() bool {
	for _, cell := range r {
		if cell.Kind != CellEmpty {
			return false
		}
	}
	return true
}
