package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/itemcompare/backend/internal/domain"
)

func TestAddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("stores valid product and returns assigned id", func(t *testing.T) {
		repo := NewMockProductRepository()
		svc := NewProductService(repo)

		got, err := svc.AddProduct(ctx, validProduct())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "generated-id" {
			t.Errorf("ID = %q, want generated-id", got.ID)
		}
		if got.Name != "Smartphone X" {
			t.Errorf("Name = %q, want Smartphone X", got.Name)
		}
		if len(repo.created) != 1 {
			t.Errorf("created = %d products, want 1", len(repo.created))
		}
	})

	t.Run("keeps caller supplied id", func(t *testing.T) {
		repo := NewMockProductRepository()
		svc := NewProductService(repo)
		p := validProduct()
		p.ID = "sku-42"

		got, err := svc.AddProduct(ctx, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "sku-42" {
			t.Errorf("ID = %q, want sku-42", got.ID)
		}
	})

	t.Run("price boundaries", func(t *testing.T) {
		tests := []struct {
			price   float64
			wantErr bool
		}{
			{0.0, true},
			{-5.0, true},
			{0.01, false},
		}
		for _, tt := range tests {
			repo := NewMockProductRepository()
			svc := NewProductService(repo)
			p := validProduct()
			p.Price = domain.Float64(tt.price)

			_, err := svc.AddProduct(ctx, p)
			if (err != nil) != tt.wantErr {
				t.Errorf("price %v: error = %v, wantErr %v", tt.price, err, tt.wantErr)
			}
			if tt.wantErr && err != nil && err.Error() != MsgPriceInvalid {
				t.Errorf("price %v: error = %q, want %q", tt.price, err, MsgPriceInvalid)
			}
		}
	})

	t.Run("rating boundaries", func(t *testing.T) {
		for rating, wantErr := range map[float64]bool{0.0: false, -0.1: true} {
			repo := NewMockProductRepository()
			svc := NewProductService(repo)
			p := validProduct()
			p.Rating = domain.Float64(rating)

			_, err := svc.AddProduct(ctx, p)
			if (err != nil) != wantErr {
				t.Errorf("rating %v: error = %v, wantErr %v", rating, err, wantErr)
			}
		}
	})

	t.Run("does not call storage on validation failure", func(t *testing.T) {
		repo := NewMockProductRepository()
		svc := NewProductService(repo)

		_, err := svc.AddProduct(ctx, nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("error = %v, want ErrValidation", err)
		}
		if repo.createCalled {
			t.Error("expected repository Create not to be called")
		}
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repoErr := domain.NewRepositoryError("save product", errors.New("disk full"))
		repo := NewMockProductRepository()
		repo.createError = repoErr
		svc := NewProductService(repo)

		_, err := svc.AddProduct(ctx, validProduct())
		if err != repoErr {
			t.Errorf("error = %v, want %v", err, repoErr)
		}
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns repository products", func(t *testing.T) {
		repo := NewMockProductRepository()
		repo.listResult = products("a", "b")
		svc := NewProductService(repo)

		got, err := svc.ListProducts(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
			t.Errorf("ListProducts() = %+v, want products a, b", got)
		}
	})

	t.Run("never returns nil", func(t *testing.T) {
		repo := NewMockProductRepository()
		svc := NewProductService(repo)

		got, err := svc.ListProducts(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("ListProducts() returned nil")
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repo := NewMockProductRepository()
		repo.listError = domain.NewRepositoryError("list products", errors.New("boom"))
		svc := NewProductService(repo)

		_, err := svc.ListProducts(ctx)
		if !errors.Is(err, domain.ErrRepository) {
			t.Errorf("error = %v, want ErrRepository", err)
		}
	})
}

func TestCompareProducts(t *testing.T) {
	repo := NewMockProductRepository()
	repo.findResult = products("x", "y")
	svc := NewProductService(repo)

	got, err := svc.CompareProducts(context.Background(), []string{"x", "y", "z"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}
