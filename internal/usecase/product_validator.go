package usecase

import (
	"strings"

	"github.com/itemcompare/backend/internal/domain"
)

// Field rule messages, in the order the rules are checked.
const (
	MsgProductRequired        = "product is required"
	MsgNameRequired           = "name is required"
	MsgDescriptionRequired    = "description is required"
	MsgImageURLRequired       = "image URL is required"
	MsgPriceInvalid           = "price must be greater than zero"
	MsgRatingInvalid          = "rating must be greater than or equal to zero"
	MsgSpecificationsRequired = "specifications are required"
)

// ValidateProduct checks the product's fields and returns a
// *domain.ValidationError for the first rule it breaks, or nil.
func ValidateProduct(p *domain.Product) error {
	if reason := firstViolation(p); reason != "" {
		return &domain.ValidationError{Reason: reason}
	}
	return nil
}

func firstViolation(p *domain.Product) string {
	switch {
	case p == nil:
		return MsgProductRequired
	case isBlank(p.Name):
		return MsgNameRequired
	case isBlank(p.Description):
		return MsgDescriptionRequired
	case isBlank(p.ImageURL):
		return MsgImageURLRequired
	case p.Price == nil || !(*p.Price > 0):
		return MsgPriceInvalid
	case p.Rating == nil || !(*p.Rating >= 0):
		return MsgRatingInvalid
	case isBlank(p.Specifications):
		return MsgSpecificationsRequired
	}
	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
