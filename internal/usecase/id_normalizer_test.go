package usecase

import (
	"reflect"
	"testing"
)

func TestNormalizeIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "drops blanks and duplicates keeping first occurrence",
			raw:  []string{"b", "", "a", "b", "   ", "a"},
			want: []string{"b", "a"},
		},
		{
			name: "keeps order of distinct ids",
			raw:  []string{"z", "y", "x"},
			want: []string{"z", "y", "x"},
		},
		{
			name: "collapses repeated id",
			raw:  []string{"x", "x", "x"},
			want: []string{"x"},
		},
		{
			name: "exact match only",
			raw:  []string{"a", "A", " a"},
			want: []string{"a", "A", " a"},
		},
		{
			name: "nil input",
			raw:  nil,
			want: []string{},
		},
		{
			name: "only blanks",
			raw:  []string{"", "\t"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeIDs(tt.raw)
			if got == nil {
				t.Fatal("NormalizeIDs() returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeIDs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeIDs_NoBlanksNoDuplicates(t *testing.T) {
	inputs := [][]string{
		{"1", "2", "1", "", "3", "2", " ", "4"},
		{"", "", ""},
		{"p-1", "p-1", "p-2"},
	}

	for _, raw := range inputs {
		got := NormalizeIDs(raw)
		seen := map[string]bool{}
		for _, id := range got {
			if isBlank(id) {
				t.Errorf("NormalizeIDs(%q) contains blank id", raw)
			}
			if seen[id] {
				t.Errorf("NormalizeIDs(%q) contains duplicate %q", raw, id)
			}
			seen[id] = true
		}
	}
}
