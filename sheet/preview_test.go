package sheet

import "testing"

func TestBuildPreview(t *testing.T) {
	t.Parallel()

	rows := []Row{
		textRow("PREFEITURA MUNICIPAL"),
		{},
		textRow("ITEM", "DESCRIÇÃO", "VALOR UNIT"),
		{TextCell("1"), TextCell("PARAFUSO M8"), NumberCell(2.5)},
		{TextCell("2"), TextCell("PORCA M8"), NumberCell(0.8)},
	}

	preview := BuildPreview(rows, 10)
	if len(preview.Headers) != 3 || preview.Headers[1] != "DESCRIÇÃO" {
		t.Fatalf("unexpected headers: %v", preview.Headers)
	}
	if len(preview.Rows) != 2 {
		t.Fatalf("expected 2 preview rows, got %d", len(preview.Rows))
	}
	if preview.Rows[0][2] != "2.5" {
		t.Fatalf("unexpected first preview row: %v", preview.Rows[0])
	}
}

func TestBuildPreviewLimit(t *testing.T) {
	t.Parallel()

	rows := []Row{textRow("DESCRIÇÃO", "VALOR UNIT")}
	for i := 0; i < 20; i++ {
		rows = append(rows, Row{TextCell("PRODUTO"), NumberCell(1)})
	}

	preview := BuildPreview(rows, 10)
	if len(preview.Rows) != 10 {
		t.Fatalf("expected preview capped at 10 rows, got %d", len(preview.Rows))
	}
}

func TestBuildPreviewNoKeywordRows(t *testing.T) {
	t.Parallel()

	rows := []Row{textRow("a", "b"), textRow("c", "d")}
	preview := BuildPreview(rows, 10)
	if len(preview.Headers) != 2 || preview.Headers[0] != "a" {
		t.Fatalf("expected first row as header, got %v", preview.Headers)
	}
	if len(preview.Rows) != 1 {
		t.Fatalf("expected 1 preview row, got %d", len(preview.Rows))
	}
}
