package storage

import (
	"context"
	"sync"

	"github.com/itemcompare/backend/internal/domain"
)

// MemoryRepository is a thread-safe in-memory product store.
// Products are kept in insertion order; values are copied in and out.
type MemoryRepository struct {
	products []domain.Product
	mutex    sync.RWMutex
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		products: []domain.Product{},
	}
}

// Create stores a product, assigning an ID if it has none.
// An ID that is already stored is rejected.
func (r *MemoryRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, domain.NewRepositoryError("save product", err)
	}

	stored := withID(p)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if containsID(r.products, stored.ID) {
		return domain.Product{}, duplicateID(stored.ID)
	}
	r.products = append(r.products, stored)

	return stored.Clone(), nil
}

// ListAll returns every stored product
func (r *MemoryRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewRepositoryError("list products", err)
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return cloneAll(r.products), nil
}

// FindByIDs returns the stored products whose ID is in ids, in insertion order
func (r *MemoryRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewRepositoryError("load products for comparison", err)
	}

	wanted := idSet(ids)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	found := make([]domain.Product, 0, len(ids))
	for _, p := range r.products {
		if _, ok := wanted[p.ID]; ok {
			found = append(found, p.Clone())
		}
	}
	return found, nil
}
