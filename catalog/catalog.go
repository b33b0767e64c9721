package catalog

// Product is one canonical catalog entry.
type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Association links one customer to one product at a customer-specific
// price and brand. Brand is nil when the source sheet carried none.
type Association struct {
	CustomerID  int64   `json:"customer_id"`
	ProductID   int64   `json:"product_id"`
	CustomPrice float64 `json:"custom_price"`
	CustomBrand *string `json:"custom_brand"`
}
