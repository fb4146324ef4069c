package storage

import (
	"errors"
	"testing"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		in      string
		want    Sort
		wantErr bool
	}{
		{"", SortDateDesc, false},
		{"-date", SortDateDesc, false},
		{"date", SortDateAsc, false},
		{"-amount", SortAmountDesc, false},
		{"amount", SortAmountAsc, false},
		{"category", SortCategory, false},
		{"name; DROP TABLE expenses", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSort(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSort(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidSort) {
				t.Errorf("expected ErrInvalidSort, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSort(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
