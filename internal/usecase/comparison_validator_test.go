package usecase

import (
	"errors"
	"testing"

	"github.com/itemcompare/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIDList(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []string
		wantMsg string
	}{
		{name: "nil list", raw: nil, wantMsg: MsgIDListNull},
		{name: "empty list", raw: []string{}, wantMsg: MsgMinTwoIDs},
		{name: "single id", raw: []string{"x"}, wantMsg: MsgMinTwoIDs},
		{name: "duplicates collapse to one", raw: []string{"x", "x", "x"}, wantMsg: MsgMinTwoValidIDs},
		{name: "blank ids only", raw: []string{"", " "}, wantMsg: MsgMinTwoValidIDs},
		{name: "two valid ids", raw: []string{"x", "", "y"}, want: []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateIDList(tt.raw)
			if tt.wantMsg != "" {
				var cErr *domain.ComparisonError
				require.True(t, errors.As(err, &cErr), "want *ComparisonError, got %v", err)
				assert.Equal(t, tt.wantMsg, cErr.Reason)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateComparisonResult(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		found   []domain.Product
		wantMsg string
	}{
		{name: "two ids, none found", ids: []string{"x", "y"}, found: nil, wantMsg: MsgProductsNotExist},
		{name: "two ids, one found", ids: []string{"x", "y"}, found: products("x"), wantMsg: MsgProductsNotExist},
		{name: "two ids, both found", ids: []string{"x", "y"}, found: products("x", "y")},
		{name: "three ids, one found", ids: []string{"x", "y", "z"}, found: products("x"), wantMsg: MsgMinTwoExistingFound},
		{name: "three ids, two found", ids: []string{"x", "y", "z"}, found: products("x", "y")},
		{name: "five ids, two found", ids: []string{"a", "b", "c", "d", "e"}, found: products("c", "e")},
		{name: "three ids, none found", ids: []string{"x", "y", "z"}, found: []domain.Product{}, wantMsg: MsgMinTwoExistingFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComparisonResult(tt.ids, tt.found)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrComparison)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}
