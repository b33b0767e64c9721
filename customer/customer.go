package customer

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultContract is used when the filename carries no contract number.
const DefaultContract = "S/N"

// Contract numbers appear in filenames as "PE 49" or "PE 49.2".
var contractPattern = regexp.MustCompile(`(?i)PE\s*(\d+(\.\d+)?)`)

// Customer identifies one price-list owner. Name and contract number are
// derived from the workbook filename, which follows the
// "<PREFIX> <NAME> PE <contract>.xlsx" convention.
type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Contract string `json:"contract_number"`
}

// FromFilename derives the customer identity from a workbook path. The
// vendor prefix is removed wherever it appears; the contract number is
// lifted out of the name and defaults to "S/N" when absent.
func FromFilename(path, prefix string) Customer {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if prefix != "" {
		name = strings.ReplaceAll(name, prefix, "")
	}
	name = strings.TrimSpace(name)

	contract := DefaultContract
	if match := contractPattern.FindStringSubmatch(name); match != nil {
		contract = match[1]
	}
	name = strings.TrimSpace(contractPattern.ReplaceAllString(name, ""))

	return Customer{Name: name, Contract: contract}
}
