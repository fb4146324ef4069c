package calculator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/mmynk/expensetracker/internal/models"
)

func TestEqualShares(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		n       int
		want    []string
		wantErr bool
	}{
		{name: "even split", amount: "100", n: 4, want: []string{"25", "25", "25", "25"}},
		{name: "remainder to first shares", amount: "100", n: 3, want: []string{"33.34", "33.33", "33.33"}},
		{name: "two remainder cents", amount: "0.05", n: 3, want: []string{"0.02", "0.02", "0.01"}},
		{name: "fewer cents than people", amount: "0.01", n: 3, want: []string{"0.01", "0", "0"}},
		{name: "single participant", amount: "12.34", n: 1, want: []string{"12.34"}},
		{name: "no participants", amount: "10", n: 0, wantErr: true},
		{name: "sub-cent amount", amount: "10.001", n: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EqualShares(decimal.RequireFromString(tt.amount), tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EqualShares() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			want := make([]decimal.Decimal, len(tt.want))
			for i, s := range tt.want {
				want[i] = decimal.RequireFromString(s)
			}
			if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
				t.Errorf("EqualShares() mismatch (-want +got):\n%s", diff)
			}

			sum := decimal.Zero
			for _, s := range got {
				sum = sum.Add(s)
			}
			if !sum.Equal(decimal.RequireFromString(tt.amount)) {
				t.Errorf("shares add up to %s, want %s", sum, tt.amount)
			}
		})
	}
}

func TestEqualSplits(t *testing.T) {
	splits, err := EqualSplits(decimal.RequireFromString("10"), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("EqualSplits failed: %v", err)
	}
	want := []models.Split{
		{ParticipantID: "a", Amount: decimal.RequireFromString("3.34")},
		{ParticipantID: "b", Amount: decimal.RequireFromString("3.33")},
		{ParticipantID: "c", Amount: decimal.RequireFromString("3.33")},
	}
	if diff := cmp.Diff(want, splits, decimalComparer); diff != "" {
		t.Errorf("EqualSplits() mismatch (-want +got):\n%s", diff)
	}

	if _, err := EqualSplits(decimal.NewFromInt(10), []string{"a", "a"}); !errors.Is(err, models.ErrDuplicateShare) {
		t.Errorf("expected ErrDuplicateShare, got %v", err)
	}
}
