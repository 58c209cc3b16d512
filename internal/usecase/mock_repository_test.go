package usecase

import (
	"context"

	"github.com/itemcompare/backend/internal/domain"
)

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	created      []domain.Product
	listResult   []domain.Product
	findResult   []domain.Product
	createError  error
	listError    error
	findError    error
	createCalled bool
	listCalled   bool
	findCalls    int
	findArgs     []string
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

func (m *MockProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	m.createCalled = true
	if m.createError != nil {
		return domain.Product{}, m.createError
	}
	if p.ID == "" {
		p.ID = "generated-id"
	}
	m.created = append(m.created, p)
	return p, nil
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	m.listCalled = true
	if m.listError != nil {
		return nil, m.listError
	}
	return m.listResult, nil
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	m.findCalls++
	m.findArgs = ids
	if m.findError != nil {
		return nil, m.findError
	}
	return m.findResult, nil
}

func validProduct() *domain.Product {
	return &domain.Product{
		Name:           "Smartphone X",
		ImageURL:       "https://example.com/x.png",
		Description:    "A phone with a large screen",
		Price:          domain.Float64(499.99),
		Rating:         domain.Float64(4.5),
		Specifications: "6.5in OLED, 128GB",
	}
}

func products(ids ...string) []domain.Product {
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p := *validProduct()
		p.ID = id
		out = append(out, p)
	}
	return out
}
