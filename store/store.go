package store

import (
	"context"

	"pricebook/catalog"
)

// Store is the persistence contract shared by the remote catalog service and
// the local SQLite database: a catalog of products, a customer registry, and
// per-customer product associations.
type Store interface {
	// ListProducts returns the catalog snapshot used to seed the in-run
	// matching index.
	ListProducts(ctx context.Context) ([]catalog.Product, error)

	// CreateProduct inserts a new catalog entry and returns its id.
	CreateProduct(ctx context.Context, name string) (int64, error)

	// FindCustomer resolves a customer by exact name.
	FindCustomer(ctx context.Context, name string) (int64, bool, error)

	// CreateCustomer registers a customer with its contract number.
	CreateCustomer(ctx context.Context, name, contract string) (int64, error)

	// ReplaceCustomerProducts swaps a customer's full association set for
	// the given one. Callers treat the replacement as atomic.
	ReplaceCustomerProducts(ctx context.Context, customerID int64, associations []catalog.Association) error
}
