package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/itemcompare/backend/internal/domain"
)

// Backend names accepted by Open.
const (
	TypeMemory   = "memory"
	TypeJSON     = "json"
	TypePostgres = "postgres"
)

// Options selects and configures a storage backend.
type Options struct {
	Type        string
	JSONPath    string
	DatabaseURL string
}

// Open builds the repository selected by opts. The returned close function
// releases backend resources and is never nil.
func Open(ctx context.Context, opts Options) (domain.ProductRepository, func() error, error) {
	noop := func() error { return nil }

	switch opts.Type {
	case TypeMemory:
		log.Printf("[STORAGE] using in-memory repository")
		return NewMemoryRepository(), noop, nil

	case TypeJSON:
		log.Printf("[STORAGE] using JSON file repository: %s", opts.JSONPath)
		return NewJSONFileRepository(opts.JSONPath), noop, nil

	case TypePostgres:
		db, err := OpenPostgres(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		repo := NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		log.Printf("[STORAGE] using PostgreSQL repository")
		return repo, db.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown storage type %q", opts.Type)
}
