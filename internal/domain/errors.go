package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches any *ValidationError
	ErrValidation = errors.New("product validation failed")

	// ErrComparison matches any *ComparisonError
	ErrComparison = errors.New("product comparison failed")

	// ErrRepository matches any *RepositoryError
	ErrRepository = errors.New("product repository failure")
)

// ValidationError is returned when a product breaks one of the field rules.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ComparisonError is returned when an identifier list or a comparison
// outcome does not satisfy the comparison policy.
type ComparisonError struct {
	Reason string
}

func (e *ComparisonError) Error() string { return e.Reason }

// Is reports whether target is ErrComparison.
func (e *ComparisonError) Is(target error) bool { return target == ErrComparison }

// RepositoryError wraps a failure of the storage layer.
type RepositoryError struct {
	Op  string
	Err error
}

// NewRepositoryError wraps err with the operation that failed.
func NewRepositoryError(op string, err error) *RepositoryError {
	return &RepositoryError{Op: op, Err: err}
}

func (e *RepositoryError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// Is reports whether target is ErrRepository.
func (e *RepositoryError) Is(target error) bool { return target == ErrRepository }
