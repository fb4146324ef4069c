package api

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCodecMoneyHasTwoDecimals(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"whole", decimal.New(10000, -2), `{"from":"B","to":"A","amount":"100.00"}`},
		{"trailing zero", decimal.New(3330, -2), `{"from":"B","to":"A","amount":"33.30"}`},
		{"integer", decimal.NewFromInt(7), `{"from":"B","to":"A","amount":"7.00"}`},
		{"zero", decimal.Zero, `{"from":"B","to":"A","amount":"0.00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Codec{}.Marshal(&Transfer{From: "B", To: "A", Amount: NewMoney(tt.amount)})
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestCodecMoneyInput(t *testing.T) {
	for _, raw := range []string{
		`{"amount":"42.5"}`,
		`{"amount":42.5}`,
	} {
		var share Share
		if err := (Codec{}).Unmarshal([]byte(raw), &share); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", raw, err)
		}
		if !share.Amount.Equal(decimal.RequireFromString("42.50")) {
			t.Errorf("Unmarshal(%s) amount = %s, want 42.50", raw, share.Amount)
		}
	}

	var share Share
	if err := (Codec{}).Unmarshal([]byte(`{"amount":"lots"}`), &share); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestCodecEmptyBody(t *testing.T) {
	var req GetSettlementRequest
	if err := (Codec{}).Unmarshal(nil, &req); err != nil {
		t.Errorf("Unmarshal(nil) failed: %v", err)
	}
}
