package catalog

// DefaultThreshold is deliberately severe: a description must cover nearly
// every token of a catalog name before the two are considered the same
// product. Genuinely distinct products often share most of their words.
const DefaultThreshold = 0.95

type indexEntry struct {
	id     int64
	tokens map[string]struct{}
}

// Index holds the in-run mapping from normalized product names to catalog
// ids. It is seeded once from a catalog snapshot and extended as products
// are created; it is never refreshed from the backing store mid-run, so
// concurrent external writes are invisible until the next run.
type Index struct {
	threshold float64
	byNorm    map[string]int64
	entries   []indexEntry
}

// NewIndex builds an index over a catalog snapshot. A non-positive threshold
// falls back to DefaultThreshold.
func NewIndex(products []Product, threshold float64) *Index {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	index := &Index{
		threshold: threshold,
		byNorm:    make(map[string]int64, len(products)),
		entries:   make([]indexEntry, 0, len(products)),
	}
	for _, product := range products {
		index.Add(product)
	}
	return index
}

// Add registers a product under its normalized name. The first product seen
// for a given normalized name owns the exact-match slot.
func (ix *Index) Add(product Product) {
	norm := Normalize(product.Name)
	if norm == "" {
		return
	}
	if _, exists := ix.byNorm[norm]; !exists {
		ix.byNorm[norm] = product.ID
	}
	ix.entries = append(ix.entries, indexEntry{id: product.ID, tokens: Tokenize(product.Name)})
}

// Len reports the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Match resolves a free-text description to a product id. The exact path on
// the normalized name is tried first. The fuzzy path scores every entry by
// the fraction of the catalog name's tokens present in the description; the
// asymmetry lets a short canonical name score high against a longer free-text
// description. Only a score strictly above the threshold is accepted, and
// ties keep the first entry seen.
func (ix *Index) Match(description string) (int64, bool) {
	norm := Normalize(description)
	if norm == "" {
		return 0, false
	}
	if id, ok := ix.byNorm[norm]; ok {
		return id, true
	}

	descTokens := Tokenize(description)
	if len(descTokens) == 0 {
		return 0, false
	}

	var (
		bestID    int64
		bestScore float64
	)
	for _, entry := range ix.entries {
		if len(entry.tokens) == 0 {
			continue
		}
		overlap := 0
		for token := range entry.tokens {
			if _, ok := descTokens[token]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		score := float64(overlap) / float64(len(entry.tokens))
		if score > bestScore {
			bestScore = score
			bestID = entry.id
		}
	}

	if bestScore > ix.threshold {
		return bestID, true
	}
	return 0, false
}
