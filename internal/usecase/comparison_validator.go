package usecase

import "github.com/itemcompare/backend/internal/domain"

// Comparison policy messages.
const (
	MsgIDListNull          = "identifier list must not be null"
	MsgMinTwoIDs           = "at least two identifiers are required"
	MsgMinTwoValidIDs      = "at least two valid (non-null, non-blank) identifiers are required"
	MsgProductsNotExist    = "one or more requested products do not exist"
	MsgMinTwoExistingFound = "at least two existing products are required to compare"
)

// minComparable is the number of products a comparison must contain.
const minComparable = 2

// ValidateIDList checks the shape of a raw comparison request and returns
// the normalized identifiers.
func ValidateIDList(raw []string) ([]string, error) {
	if raw == nil {
		return nil, &domain.ComparisonError{Reason: MsgIDListNull}
	}
	if len(raw) < minComparable {
		return nil, &domain.ComparisonError{Reason: MsgMinTwoIDs}
	}

	ids := NormalizeIDs(raw)
	if len(ids) < minComparable {
		return nil, &domain.ComparisonError{Reason: MsgMinTwoValidIDs}
	}
	return ids, nil
}

// ValidateComparisonResult checks that storage found enough products for the
// normalized request. With exactly two ids both must resolve; with more than
// two, any two resolving products are enough.
func ValidateComparisonResult(normalizedIDs []string, found []domain.Product) error {
	if len(found) >= minComparable {
		return nil
	}
	if len(normalizedIDs) == minComparable {
		return &domain.ComparisonError{Reason: MsgProductsNotExist}
	}
	return &domain.ComparisonError{Reason: MsgMinTwoExistingFound}
}
