package usecase

import (
	"context"

	"github.com/itemcompare/backend/internal/domain"
)

// ProductService is the entry point for product registration, listing and
// comparison.
type ProductService struct {
	repo       domain.ProductRepository
	comparison *ComparisonService
}

// NewProductService creates a product service with its storage dependency
func NewProductService(repo domain.ProductRepository) *ProductService {
	return &ProductService{
		repo:       repo,
		comparison: NewComparisonService(repo),
	}
}

// AddProduct validates p and stores it. Storage is not touched when
// validation fails.
func (s *ProductService) AddProduct(ctx context.Context, p *domain.Product) (domain.Product, error) {
	if err := ValidateProduct(p); err != nil {
		return domain.Product{}, err
	}
	return s.repo.Create(ctx, *p)
}

// ListProducts returns all stored products.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// CompareProducts returns the products to compare for the given identifiers.
func (s *ProductService) CompareProducts(ctx context.Context, rawIDs []string) ([]domain.Product, error) {
	return s.comparison.Compare(ctx, rawIDs)
}
