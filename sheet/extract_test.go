package sheet

import "testing"

func TestExtractIndexed(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor()
	header := &Header{Description: 1, Price: 3, Brand: 2, Unit: -1}

	row := Row{TextCell("1"), TextCell("PARAFUSO M8"), TextCell("ACME"), NumberCell(2.5)}
	candidate, ok := extractor.Extract(row, header)
	if !ok {
		t.Fatalf("expected a candidate")
	}
	if candidate.Description != "PARAFUSO M8" || candidate.Price != 2.5 || candidate.Brand != "ACME" {
		t.Fatalf("unexpected candidate: %+v", candidate)
	}
}

func TestExtractIndexedUnit(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor()
	header := &Header{Description: 0, Price: 1, Brand: -1, Unit: 2}

	row := Row{TextCell("PARAFUSO M8"), NumberCell(2.5), TextCell("CX")}
	candidate, ok := extractor.Extract(row, header)
	if !ok {
		t.Fatalf("expected a candidate")
	}
	if candidate.Unit != "CX" {
		t.Fatalf("expected unit CX, got %q", candidate.Unit)
	}
}

func TestExtractIndexedTextualPriceNotClaimed(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor()
	header := &Header{Description: 0, Price: 1, Brand: -1, Unit: -1}

	// A textual price cell leaves the row to the numeric-only fallback.
	// With no numeric cell anywhere, the row is dropped, even though the
	// text would coerce to a valid price.
	if _, ok := extractor.Extract(Row{TextCell("CANETA ESFEROGRAFICA AZUL CRISTAL"), TextCell("12,50")}, header); ok {
		t.Fatalf("expected textual indexed price to be dropped")
	}

	// With a numeric cell later in the row, the fallback rebinds the pair.
	row := Row{TextCell("CANETA ESFEROGRAFICA AZUL CRISTAL"), TextCell("12,50"), NumberCell(3.2)}
	candidate, ok := extractor.Extract(row, header)
	if !ok {
		t.Fatalf("expected fallback candidate")
	}
	if candidate.Price != 3.2 {
		t.Fatalf("expected fallback price 3.2, got %v", candidate.Price)
	}
}

func TestExtractIndexedNonpositivePriceDropsRow(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor()
	header := &Header{Description: 0, Price: 1, Brand: -1, Unit: -1}

	// The indexed strategy claims the row: the price cell is numeric, just
	// invalid. The row must be dropped outright, not handed to the
	// positional scan, which would bind the 7.5 further right.
	rows := []Row{
		{TextCell("PRODUTO DE LIMPEZA MULTIUSO 500ML"), NumberCell(0), NumberCell(7.5)},
		{TextCell("PRODUTO DE LIMPEZA MULTIUSO 500ML"), NumberCell(-5), NumberCell(7.5)},
	}
	for _, row := range rows {
		if candidate, ok := extractor.Extract(row, header); ok {
			t.Fatalf("expected row to be dropped, got %+v", candidate)
		}
	}
}

func TestExtractRaggedRowFallsBack(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor()
	header := &Header{Description: 1, Price: 5, Brand: -1, Unit: -1}

	// Too short for the indexed read; long enough description for the
	// positional scan.
	row := Row{TextCell("CIMENTO PORTLAND CP2 50KG"), NumberCell(34.9)}
	candidate, ok := extractor.Extract(row, header)
	if !ok {
		t.Fatalf("expected fallback candidate")
	}
	if candidate.Description != "CIMENTO PORTLAND CP2 50KG" || candidate.Price != 34.9 {
		t.Fatalf("unexpected candidate: %+v", candidate)
	}
}

func TestExtractPositionalBounds(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor()

	tests := []struct {
		name string
		row  Row
		ok   bool
	}{
		{name: "short description skipped", row: Row{TextCell("PARAFUSO M8"), NumberCell(2.5)}, ok: false},
		{name: "long description with price", row: Row{TextCell("PARAFUSO SEXTAVADO M8 INOX"), NumberCell(2.5)}, ok: true},
		{name: "price above window", row: Row{TextCell("PARAFUSO SEXTAVADO M8 INOX"), NumberCell(10000)}, ok: false},
		{name: "price before description ignored", row: Row{NumberCell(2.5), TextCell("PARAFUSO SEXTAVADO M8 INOX")}, ok: false},
		{name: "number past intermediate cells", row: Row{TextCell("PARAFUSO SEXTAVADO M8 INOX"), TextCell("UN"), Cell{}, NumberCell(3.1)}, ok: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, ok := extractor.Extract(tc.row, nil)
			if ok != tc.ok {
				t.Fatalf("Extract ok=%v, want %v", ok, tc.ok)
			}
		})
	}
}

func TestExtractPositionalLookaheadWindow(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor()
	extractor.PriceLookahead = 3

	row := Row{TextCell("PARAFUSO SEXTAVADO M8 INOX"), Cell{}, NumberCell(4.2)}
	if _, ok := extractor.Extract(row, nil); !ok {
		t.Fatalf("expected price inside lookahead window")
	}

	row = Row{TextCell("PARAFUSO SEXTAVADO M8 INOX"), Cell{}, Cell{}, NumberCell(4.2)}
	if _, ok := extractor.Extract(row, nil); ok {
		t.Fatalf("expected price outside lookahead window to be ignored")
	}
}

func TestExtractDenylist(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor()
	header := &Header{Description: 0, Price: 1, Brand: -1, Unit: -1}

	tests := []struct {
		name        string
		description string
		ok          bool
	}{
		{name: "total row", description: "TOTAL GERAL DO PEDIDO", ok: false},
		{name: "subtotal row", description: "SUBTOTAL DA SEÇÃO", ok: false},
		{name: "lot label", description: "LOTE 3 MATERIAIS DE LIMPEZA", ok: false},
		{name: "valor row", description: "VALOR DOS ITENS ACIMA", ok: false},
		{name: "lot code in product name", description: "DETERGENTE LOTE123 NEUTRO", ok: true},
		{name: "regular product", description: "DETERGENTE NEUTRO 500ML", ok: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, ok := extractor.Extract(Row{TextCell(tc.description), NumberCell(9.9)}, header)
			if ok != tc.ok {
				t.Fatalf("Extract(%q) ok=%v, want %v", tc.description, ok, tc.ok)
			}
		})
	}
}

func TestExtractIndexedRejectedPriceFallsBack(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor()
	header := &Header{Description: 0, Price: 1, Brand: -1, Unit: -1}

	// The indexed price cell is unusable text, but the row still holds a
	// plausible description/price pair for the positional scan.
	row := Row{TextCell("VASSOURA DE PELO SINTETICO 40CM"), TextCell("consultar"), NumberCell(18.75)}
	candidate, ok := extractor.Extract(row, header)
	if !ok {
		t.Fatalf("expected fallback candidate")
	}
	if candidate.Price != 18.75 {
		t.Fatalf("expected fallback price, got %v", candidate.Price)
	}
}
