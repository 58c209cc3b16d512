package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/itemcompare/backend/internal/domain"
)

// withID returns a private copy of p that carries an ID, generating one
// when the caller left it blank.
func withID(p domain.Product) domain.Product {
	out := p.Clone()
	if strings.TrimSpace(out.ID) == "" {
		out.ID = uuid.NewString()
	}
	return out
}

// idSet builds a lookup set for FindByIDs.
func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// duplicateID returns the error for an insert whose ID is already taken.
func duplicateID(id string) error {
	return domain.NewRepositoryError("save product", fmt.Errorf("product %q already exists", id))
}

func containsID(products []domain.Product, id string) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func cloneAll(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.Clone())
	}
	return out
}
