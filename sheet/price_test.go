package sheet

import "testing"

func TestCoercePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell Cell
		want float64
		ok   bool
	}{
		{name: "positive number", cell: NumberCell(12.5), want: 12.5, ok: true},
		{name: "decimal comma text", cell: TextCell("12,50"), want: 12.5, ok: true},
		{name: "decimal dot text", cell: TextCell("7.25"), want: 7.25, ok: true},
		{name: "integer text", cell: TextCell("3"), want: 3, ok: true},
		{name: "non numeric text", cell: TextCell("abc"), ok: false},
		{name: "zero", cell: NumberCell(0), ok: false},
		{name: "negative", cell: NumberCell(-5), ok: false},
		{name: "zero text", cell: TextCell("0,00"), ok: false},
		{name: "empty", cell: Cell{}, ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := CoercePrice(tc.cell)
			if ok != tc.ok {
				t.Fatalf("CoercePrice(%+v): ok=%v, want %v", tc.cell, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("CoercePrice(%+v) = %v, want %v", tc.cell, got, tc.want)
			}
		})
	}
}

func TestCellFromRaw(t *testing.T) {
	t.Parallel()

	if cell := CellFromRaw("  "); cell.Kind != CellEmpty {
		t.Fatalf("expected blank value to classify as empty, got %+v", cell)
	}
	if cell := CellFromRaw("2.5"); cell.Kind != CellNumber || cell.Number != 2.5 {
		t.Fatalf("expected numeric cell, got %+v", cell)
	}
	// the decimal comma form is text at this stage; coercion handles it later
	if cell := CellFromRaw("12,50"); cell.Kind != CellText {
		t.Fatalf("expected text cell, got %+v", cell)
	}
}
