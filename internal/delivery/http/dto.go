package http

import "github.com/itemcompare/backend/internal/domain"

// ProductRequest is the body accepted by POST /products. Binding rules are
// the transport-level checks; the usecase layer applies the business rules.
type ProductRequest struct {
	ID             string   `json:"id"`
	ProductName    string   `json:"productName" binding:"required,min=1,max=100"`
	ImageURL       string   `json:"imageUrl" binding:"required,startswith=http://|startswith=https://"`
	Description    string   `json:"description" binding:"required,min=10,max=500"`
	Price          *float64 `json:"price" binding:"required,gte=0.01,lte=999999.99"`
	Rating         *float64 `json:"rating" binding:"required,gte=0,lte=5"`
	Specifications string   `json:"specifications" binding:"required,min=10,max=1000"`
}

// ProductResponse is the JSON shape of a product returned by the API
type ProductResponse struct {
	ID             string   `json:"id"`
	ProductName    string   `json:"productName"`
	ImageURL       string   `json:"imageUrl"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price"`
	Rating         *float64 `json:"rating"`
	Specifications string   `json:"specifications"`
}

// ToDomain converts the request into a domain product
func (r *ProductRequest) ToDomain() *domain.Product {
	return &domain.Product{
		ID:             r.ID,
		Name:           r.ProductName,
		ImageURL:       r.ImageURL,
		Description:    r.Description,
		Price:          r.Price,
		Rating:         r.Rating,
		Specifications: r.Specifications,
	}
}

// NewProductResponse maps a domain product to its API representation
func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		ProductName:    p.Name,
		ImageURL:       p.ImageURL,
		Description:    p.Description,
		Price:          p.Price,
		Rating:         p.Rating,
		Specifications: p.Specifications,
	}
}

// NewProductResponses maps a list of products. The result is never nil so
// that an empty list encodes as [].
func NewProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
