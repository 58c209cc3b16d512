package domain

import "context"

// ProductRepository defines the storage gateway for products.
// Implementations own their own concurrency control; each method is expected
// to be atomic from the caller's point of view.
type ProductRepository interface {
	// Create persists a product, assigning an ID when p.ID is blank.
	Create(ctx context.Context, p Product) (Product, error)

	// ListAll returns every stored product in storage order. Never nil.
	ListAll(ctx context.Context) ([]Product, error)

	// FindByIDs returns the stored products whose ID is in ids.
	FindByIDs(ctx context.Context, ids []string) ([]Product, error)
}
