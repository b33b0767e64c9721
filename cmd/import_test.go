package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCollectInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []string{
		"SOMAS FERRAGENS SILVA PE 12.xlsx",
		"SOMAS OBRAS LTDA.csv",
		"unrelated.xlsx",
		"SOMAS notes.txt",
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "SOMAS backup.xlsx"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	collected, err := collectInputs([]string{"explicit.xlsx"}, dir, "SOMAS")
	if err != nil {
		t.Fatalf("collectInputs: %v", err)
	}

	want := []string{
		filepath.Join(dir, "SOMAS FERRAGENS SILVA PE 12.xlsx"),
		filepath.Join(dir, "SOMAS OBRAS LTDA.csv"),
		"explicit.xlsx",
	}
	if !reflect.DeepEqual(collected, want) {
		t.Fatalf("collected = %v, want %v", collected, want)
	}
}

func TestCollectInputsNoPrefixFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "anything.xlsm"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	collected, err := collectInputs(nil, dir, "")
	if err != nil {
		t.Fatalf("collectInputs: %v", err)
	}
	if len(collected) != 1 {
		t.Fatalf("collected = %v, want the single workbook", collected)
	}
}

func TestCollectInputsMissingDir(t *testing.T) {
	t.Parallel()

	if _, err := collectInputs(nil, filepath.Join(t.TempDir(), "missing"), ""); err == nil {
		t.Fatal("expected error for missing folder")
	}
}

func TestIsWorkbookFile(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"a.xlsx": true,
		"a.XLSX": true,
		"a.xlsm": true,
		"a.csv":  true,
		"a.xls":  false,
		"a.txt":  false,
		"a":      false,
	}
	for name, want := range cases {
		if got := isWorkbookFile(name); got != want {
			t.Errorf("isWorkbookFile(%q) = %t, want %t", name, got, want)
		}
	}
}
