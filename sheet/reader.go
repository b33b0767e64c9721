package sheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reader yields the rows of one workbook as typed cells.
type Reader interface {
	Read(path string) ([]Row, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// Open reads all rows of a workbook, inferring the format from the file
// extension.
func Open(path string) ([]Row, error) {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	var format string
	switch extension {
	case "csv":
		format = "csv"
	case "xlsx", "xlsm":
		format = "excel"
	default:
		return nil, fmt.Errorf("unsupported file extension for %s", path)
	}

	reader, err := ReaderForFormat(format)
	if err != nil {
		return nil, err
	}
	return reader.Read(path)
}
