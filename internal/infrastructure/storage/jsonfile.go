package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/itemcompare/backend/internal/domain"
)

// JSONFileRepository persists products as a pretty-printed JSON array in a
// single file. Every write rewrites the whole file.
type JSONFileRepository struct {
	path  string
	mutex sync.RWMutex
}

// NewJSONFileRepository creates a repository backed by the file at path.
// The file is created on the first write.
func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

// Path returns the backing file location
func (r *JSONFileRepository) Path() string {
	return r.path
}

// Create appends a product to the file, assigning an ID if it has none.
// An ID that is already stored is rejected.
func (r *JSONFileRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	const op = "save product"
	if err := ctx.Err(); err != nil {
		return domain.Product{}, domain.NewRepositoryError(op, err)
	}

	stored := withID(p)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	products, err := r.load()
	if err != nil {
		return domain.Product{}, domain.NewRepositoryError(op, err)
	}
	if containsID(products, stored.ID) {
		return domain.Product{}, duplicateID(stored.ID)
	}
	products = append(products, stored)

	if err := r.save(products); err != nil {
		return domain.Product{}, domain.NewRepositoryError(op, err)
	}

	return stored.Clone(), nil
}

// ListAll reads every product from the file
func (r *JSONFileRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	const op = "list products"
	if err := ctx.Err(); err != nil {
		return nil, domain.NewRepositoryError(op, err)
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	products, err := r.load()
	if err != nil {
		return nil, domain.NewRepositoryError(op, err)
	}
	return products, nil
}

// FindByIDs reads the file and keeps the products whose ID is in ids
func (r *JSONFileRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	const op = "load products for comparison"
	if err := ctx.Err(); err != nil {
		return nil, domain.NewRepositoryError(op, err)
	}

	r.mutex.RLock()
	all, err := r.load()
	r.mutex.RUnlock()
	if err != nil {
		return nil, domain.NewRepositoryError(op, err)
	}

	wanted := idSet(ids)
	found := make([]domain.Product, 0, len(ids))
	for _, p := range all {
		if _, ok := wanted[p.ID]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

// load reads the product list. A missing or empty file is an empty list.
func (r *JSONFileRepository) load() ([]domain.Product, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return []domain.Product{}, nil
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// save writes the list to a temp file next to the target and renames it
// into place, so readers never see a half-written file.
func (r *JSONFileRepository) save(products []domain.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %w", r.path, err)
	}

	log.Printf("[STORAGE] wrote %d products to %s", len(products), r.path)
	return nil
}
