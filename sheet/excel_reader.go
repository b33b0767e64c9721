package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type ExcelReader struct{}

// Read decodes the first sheet of a workbook. Raw cell values are requested
// so numeric cells are classified from their stored value, not from the
// author's display format.
func (r *ExcelReader) Read(path string) ([]Row, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	raw, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}

	rows := make([]Row, 0, len(raw))
	for _, rawRow := range raw {
		row := make(Row, len(rawRow))
		for i, value := range rawRow {
			row[i] = CellFromRaw(value)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
