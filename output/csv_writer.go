package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type CSVWriter struct{}

// Write emits the products as CSV with the same columns the SQL migration
// inserts, for reviewing the unique product set before applying it.
func (w *CSVWriter) Write(path string, products []MigrationProduct) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"name", "description", "unit", "base_price", "brand", "stock_quantity"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, product := range products {
		unit := product.Unit
		if strings.TrimSpace(unit) == "" {
			unit = "UN"
		}
		row := []string{
			product.Name,
			product.Name,
			unit,
			strconv.FormatFloat(product.Price, 'f', -1, 64),
			product.Brand,
			strconv.Itoa(defaultStock),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
