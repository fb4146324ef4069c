package models

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validExpense() *Expense {
	return &Expense{
		Date:     time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC),
		ItemName: "Groceries",
		Amount:   decimal.RequireFromString("42.50"),
		PaidBy:   "alice",
		Splits: []Split{
			{ParticipantID: "alice", Amount: decimal.RequireFromString("21.25")},
			{ParticipantID: "bob", Amount: decimal.RequireFromString("21.25")},
		},
	}
}

func TestExpenseValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *Expense)
		wantErr error
	}{
		{name: "valid", mutate: func(e *Expense) {}},
		{
			name:    "missing item name",
			mutate:  func(e *Expense) { e.ItemName = "   " },
			wantErr: ErrItemNameRequired,
		},
		{
			name:    "zero amount",
			mutate:  func(e *Expense) { e.Amount = decimal.Zero },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(e *Expense) { e.Amount = decimal.RequireFromString("-1") },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "sub-cent amount",
			mutate:  func(e *Expense) { e.Amount = decimal.RequireFromString("1.005") },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "amount too large",
			mutate:  func(e *Expense) { e.Amount = decimal.RequireFromString("10000000000") },
			wantErr: ErrAmountTooLarge,
		},
		{
			name:    "missing date",
			mutate:  func(e *Expense) { e.Date = time.Time{} },
			wantErr: ErrInvalidDate,
		},
		{
			name: "negative share",
			mutate: func(e *Expense) {
				e.Splits[1].Amount = decimal.RequireFromString("-0.01")
			},
			wantErr: ErrNegativeShare,
		},
		{
			name: "zero share is allowed",
			mutate: func(e *Expense) {
				e.Splits[1].Amount = decimal.Zero
			},
		},
		{
			name: "duplicate share",
			mutate: func(e *Expense) {
				e.Splits[1].ParticipantID = "alice"
			},
			wantErr: ErrDuplicateShare,
		},
		{
			name: "share without participant",
			mutate: func(e *Expense) {
				e.Splits[0].ParticipantID = ""
			},
			wantErr: ErrMissingShareUser,
		},
		{
			name: "splits need not reconcile",
			mutate: func(e *Expense) {
				e.Splits = e.Splits[:1]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.mutate(e)
			err := e.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitTotal(t *testing.T) {
	e := validExpense()
	if got := e.SplitTotal(); !got.Equal(decimal.RequireFromString("42.50")) {
		t.Errorf("SplitTotal() = %s, want 42.50", got)
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026-03-02", "18:45", time.UTC)
	if err != nil {
		t.Fatalf("ParseDateTime failed: %v", err)
	}
	want := time.Date(2026, 3, 2, 18, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateTime = %v, want %v", got, want)
	}

	midnight, err := ParseDateTime("2026-03-02", "", time.UTC)
	if err != nil {
		t.Fatalf("ParseDateTime without time failed: %v", err)
	}
	if midnight.Hour() != 0 || midnight.Minute() != 0 {
		t.Errorf("expected midnight, got %v", midnight)
	}

	if _, err := ParseDateTime("03/02/2026", "", time.UTC); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"": PeriodAll, "day": PeriodDay, "week": PeriodWeek, "month": PeriodMonth, "all": PeriodAll} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("year"); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("ParsePeriod(\"year\") error = %v, want ErrInvalidPeriod", err)
	}
}

func TestParticipantValidate(t *testing.T) {
	p := &Participant{Name: "  Alice  "}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if p.Name != "Alice" {
		t.Errorf("name not trimmed: %q", p.Name)
	}

	if err := (&Participant{}).Validate(); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if err := (&Participant{Name: "Bob", Email: "bob"}).Validate(); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestCategoryValidateDefaults(t *testing.T) {
	c := &Category{Name: "Food"}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c.Icon != DefaultCategoryIcon || c.Color != DefaultCategoryColor {
		t.Errorf("defaults not applied: icon=%q color=%q", c.Icon, c.Color)
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(fmt.Errorf("wrapped: %w", ErrDuplicateShare)) {
		t.Error("wrapped ErrDuplicateShare should be a validation error")
	}
	if IsValidation(errors.New("disk full")) {
		t.Error("arbitrary errors are not validation errors")
	}
	if IsValidation(nil) {
		t.Error("nil is not a validation error")
	}
}
