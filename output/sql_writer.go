package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// insertChunkSize bounds a single INSERT statement; very large statements
// are rejected by hosted Postgres endpoints.
const insertChunkSize = 500

const defaultStock = 100

// MigrationProduct is one row of a bulk catalog migration.
type MigrationProduct struct {
	Name  string
	Unit  string
	Price float64
	Brand string
}

type SQLWriter struct{}

// Write emits the products as a bulk migration script, chunked into INSERT
// statements of at most insertChunkSize rows. The product name doubles as
// the description and stock starts at defaultStock.
func (w *SQLWriter) Write(path string, products []MigrationProduct) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sql output %s: %w", path, err)
	}
	defer file.Close()

	var builder strings.Builder
	builder.WriteString("-- Bulk Migration Script\n")

	header := "INSERT INTO products (name, description, unit, base_price, brand, stock_quantity) VALUES "
	for start := 0; start < len(products); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(products) {
			end = len(products)
		}

		builder.WriteString(header)
		for i, product := range products[start:end] {
			if i > 0 {
				builder.WriteString(",\n")
			}
			builder.WriteString(productValues(product))
		}
		builder.WriteString(";\n")
	}

	if _, err := file.WriteString(builder.String()); err != nil {
		return fmt.Errorf("write sql output: %w", err)
	}
	return nil
}

func productValues(product MigrationProduct) string {
	unit := product.Unit
	if strings.TrimSpace(unit) == "" {
		unit = "UN"
	}
	return fmt.Sprintf("(%s, %s, %s, %s, %s, %d)",
		sqlString(product.Name),
		sqlString(product.Name),
		sqlString(unit),
		strconv.FormatFloat(product.Price, 'f', -1, 64),
		sqlNullableString(product.Brand),
		defaultStock,
	)
}

func sqlString(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func sqlNullableString(value string) string {
	if strings.TrimSpace(value) == "" {
		return "NULL"
	}
	return sqlString(value)
}
