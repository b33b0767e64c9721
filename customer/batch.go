package customer

import "pricebook/catalog"

// Batch accumulates one customer's product associations in arrival order.
// Duplicate product ids within a batch collapse to the last association
// seen, so a product repeated across sheet sections keeps its final price.
type Batch struct {
	order     []int64
	byProduct map[int64]catalog.Association
}

func NewBatch() *Batch {
	return &Batch{byProduct: make(map[int64]catalog.Association)}
}

func (b *Batch) Add(association catalog.Association) {
	if _, seen := b.byProduct[association.ProductID]; !seen {
		b.order = append(b.order, association.ProductID)
	}
	b.byProduct[association.ProductID] = association
}

// Len reports the number of distinct product ids in the batch.
func (b *Batch) Len() int {
	return len(b.order)
}

// Associations returns exactly one record per product id, last write wins,
// in first-seen product order.
func (b *Batch) Associations() []catalog.Association {
	out := make([]catalog.Association, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.byProduct[id])
	}
	return out
}
