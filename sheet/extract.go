package sheet

import (
	"strings"
	"unicode/utf8"
)

// Bounds for the positional fallback. The fallback trades precision for
// recall on sheets where no header row survives; the content denylist
// catches most of the summary rows it picks up.
const (
	DefaultMinDescriptionLen = 15
	DefaultPriceLookahead    = 20
	DefaultMinPrice          = 0.01
	DefaultMaxPrice          = 10000
)

// DefaultDenylist marks lot, summary, and subtotal rows that must never
// become product lines. "LOTE " carries a trailing space so section labels
// like "LOTE 3" are rejected without touching product codes.
func DefaultDenylist() []string {
	return []string{"LOTE ", "TOTAL", "SUBTOTAL", "VALOR"}
}

// Candidate is a tentative extraction from one data row. Brand and Unit are
// empty when the row carried none; only the indexed strategy recovers them.
type Candidate struct {
	Description string
	Price       float64
	Brand       string
	Unit        string
}

// Extractor applies the two extraction strategies in order: the indexed
// read driven by the active header, then the bounded positional scan. The
// first strategy to yield a validated description/price pair wins.
type Extractor struct {
	MinDescriptionLen int
	PriceLookahead    int
	MinPrice          float64
	MaxPrice          float64
	Denylist          []string
}

func NewExtractor() *Extractor {
	return &Extractor{
		MinDescriptionLen: DefaultMinDescriptionLen,
		PriceLookahead:    DefaultPriceLookahead,
		MinPrice:          DefaultMinPrice,
		MaxPrice:          DefaultMaxPrice,
		Denylist:          DefaultDenylist(),
	}
}

// Extract yields at most one candidate per data row. header may be nil when
// no header row has been recognized yet; the positional fallback then is the
// only strategy available. The indexed strategy claims a row whenever the
// header points at a non-empty description and a numeric price cell; a
// claimed row whose price fails coercion is dropped, never retried
// positionally. The fallback only sees rows the indexed strategy could not
// claim, such as rows whose price cell holds text.
func (e *Extractor) Extract(row Row, header *Header) (Candidate, bool) {
	if candidate, claimed := e.extractIndexed(row, header); claimed {
		if _, ok := CoercePrice(row[header.Price]); !ok {
			return Candidate{}, false
		}
		return e.filter(candidate)
	}
	if candidate, ok := e.extractPositional(row); ok {
		return e.filter(candidate)
	}
	return Candidate{}, false
}

// extractIndexed reads the cells the active header points at. The row must
// be long enough to hold both indices, the description must be non-empty,
// and the price cell must be numeric. The price value itself is not
// validated here; that is the coercer's job.
func (e *Extractor) extractIndexed(row Row, header *Header) (Candidate, bool) {
	if header == nil {
		return Candidate{}, false
	}
	widest := header.Description
	if header.Price > widest {
		widest = header.Price
	}
	if len(row) <= widest {
		return Candidate{}, false
	}

	description := strings.TrimSpace(row[header.Description].String())
	if description == "" {
		return Candidate{}, false
	}
	if row[header.Price].Kind != CellNumber {
		return Candidate{}, false
	}

	brand := ""
	if header.HasBrand() && len(row) > header.Brand {
		brand = strings.TrimSpace(row[header.Brand].String())
	}
	unit := ""
	if header.HasUnit() && len(row) > header.Unit {
		unit = strings.TrimSpace(row[header.Unit].String())
	}
	return Candidate{Description: description, Price: row[header.Price].Number, Brand: brand, Unit: unit}, true
}

// extractPositional scans left to right for a text cell long enough to be a
// product description, then looks ahead a bounded number of columns for the
// first numeric cell inside the plausible price window. Brand is not
// recovered by this strategy.
func (e *Extractor) extractPositional(row Row) (Candidate, bool) {
	for i, cell := range row {
		if cell.Kind != CellText {
			continue
		}
		description := strings.TrimSpace(cell.Text)
		if utf8.RuneCountInString(description) <= e.MinDescriptionLen {
			continue
		}

		limit := i + e.PriceLookahead
		if limit > len(row) {
			limit = len(row)
		}
		for j := i + 1; j < limit; j++ {
			value := row[j]
			if value.Kind != CellNumber {
				continue
			}
			if value.Number >= e.MinPrice && value.Number < e.MaxPrice {
				return Candidate{Description: description, Price: value.Number}, true
			}
		}
	}
	return Candidate{}, false
}

// filter drops candidates whose description marks a summary row rather than
// a product line.
func (e *Extractor) filter(candidate Candidate) (Candidate, bool) {
	upper := strings.ToUpper(candidate.Description)
	for _, marker := range e.Denylist {
		if strings.Contains(upper, marker) {
			return Candidate{}, false
		}
	}
	return candidate, true
}
