package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/itemcompare/backend/internal/domain"
)

// Error type codes returned in the "type" field of error bodies
const (
	TypeProductValidation = "PRODUCT_VALIDATION_ERROR"
	TypeProductComparison = "PRODUCT_COMPARISON_ERROR"
	TypeProductRepository = "PRODUCT_REPOSITORY_ERROR"
	TypeBindingValidation = "VALIDATION_ERROR"
	TypeInternal          = "INTERNAL_ERROR"
	TypeNotConfigured     = "NOT_CONFIGURED"
)

// ErrorResponse is the JSON body of every error answer
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Type    string            `json:"type"`
	Details map[string]string `json:"details,omitempty"`
}

// respondError maps a service error onto a status code and error body.
func respondError(c *gin.Context, err error) {
	var (
		status int
		body   ErrorResponse
	)

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		body = ErrorResponse{Error: "Product validation error", Message: err.Error(), Type: TypeProductValidation}
	case errors.Is(err, domain.ErrComparison):
		status = http.StatusBadRequest
		body = ErrorResponse{Error: "Product comparison error", Message: err.Error(), Type: TypeProductComparison}
	case errors.Is(err, domain.ErrRepository):
		log.Printf("[HTTP] %s %s: repository failure: %v", c.Request.Method, c.Request.URL.Path, err)
		status = http.StatusInternalServerError
		body = ErrorResponse{Error: "Product repository error", Message: err.Error(), Type: TypeProductRepository}
	default:
		log.Printf("[HTTP] %s %s: unexpected error: %v", c.Request.Method, c.Request.URL.Path, err)
		status = http.StatusInternalServerError
		body = ErrorResponse{Error: "Internal server error", Type: TypeInternal}
	}

	c.AbortWithStatusJSON(status, body)
}

// respondBindingError answers a request whose body failed to bind.
func respondBindingError(c *gin.Context, err error) {
	body := ErrorResponse{Error: "Validation error", Type: TypeBindingValidation}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		body.Details = make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			body.Details[fe.Field()] = describeFieldError(fe)
		}
	} else {
		body.Message = "request body must be a valid JSON product"
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

func describeFieldError(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isText {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
	case "max":
		if isText {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "startswith", "startswith=http://|startswith=https://":
		return "must be a valid URL (http:// or https://)"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report JSON field names, so
// details keys match the request body.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// isClientError reports whether err was caused by the request itself.
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrComparison)
}
