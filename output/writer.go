package output

import (
	"fmt"
	"strings"
)

type Writer interface {
	Write(path string, products []MigrationProduct) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "sql":
		return &SQLWriter{}, nil
	case "csv":
		return &CSVWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
