package usecase

import (
	"context"

	"github.com/itemcompare/backend/internal/domain"
)

// ComparisonService resolves a comparison request against storage.
type ComparisonService struct {
	repo domain.ProductRepository
}

// NewComparisonService creates a comparison service backed by repo.
func NewComparisonService(repo domain.ProductRepository) *ComparisonService {
	return &ComparisonService{repo: repo}
}

// Compare returns the stored products for the requested identifiers.
// Flow: validate list shape -> normalize -> single lookup -> validate outcome.
// The records come back exactly as storage returned them.
func (s *ComparisonService) Compare(ctx context.Context, rawIDs []string) ([]domain.Product, error) {
	ids, err := ValidateIDList(rawIDs)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if err := ValidateComparisonResult(ids, found); err != nil {
		return nil, err
	}
	return found, nil
}
