package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/itemcompare/backend/internal/domain"
)

// ProductService is the set of product operations the handlers expose
type ProductService interface {
	AddProduct(ctx context.Context, p *domain.Product) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CompareProducts(ctx context.Context, rawIDs []string) ([]domain.Product, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	products ProductService
}

// NewHandler creates a new HTTP handler. A nil service makes the product
// endpoints answer 501.
func NewHandler(products ProductService) *Handler {
	return &Handler{products: products}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "item-comparison-backend",
		"version": "1.0.0",
	})
}

// ListProducts handles GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponses(products))
}

// CreateProduct handles POST /products
func (h *Handler) CreateProduct(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	saved, err := h.products.AddProduct(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	ProductsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, NewProductResponse(saved))
}

// CompareProducts handles GET /products/compare?ids=a&ids=b
func (h *Handler) CompareProducts(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	products, err := h.products.CompareProducts(c.Request.Context(), compareIDs(c))
	switch {
	case err == nil:
		ComparisonsTotal.WithLabelValues("success").Inc()
	case isClientError(err):
		ComparisonsTotal.WithLabelValues("rejected").Inc()
	default:
		ComparisonsTotal.WithLabelValues("error").Inc()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProductResponses(products))
}

// compareIDs reads the ids query parameter. Repeated parameters and comma
// separated values are both accepted. A missing parameter yields nil.
func compareIDs(c *gin.Context) []string {
	values, ok := c.GetQueryArray("ids")
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		ids = append(ids, strings.Split(v, ",")...)
	}
	return ids
}

func (h *Handler) configured(c *gin.Context) bool {
	if h.products != nil {
		return true
	}
	c.AbortWithStatusJSON(http.StatusNotImplemented, ErrorResponse{
		Error: "product service not configured",
		Type:  TypeNotConfigured,
	})
	return false
}
