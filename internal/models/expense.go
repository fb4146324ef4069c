package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount that fits 12 digits with 2 decimal places.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// Expense is a single recorded payment.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Date is when the expense happened. Only the calendar date and the
	// minute of the day are kept.
	Date time.Time

	// ItemName describes what was bought.
	ItemName string

	// CategoryID is optional. Empty means unclassified.
	CategoryID string

	// CategoryName is populated on reads.
	CategoryName string

	// Amount is the total cost. Must be positive.
	Amount decimal.Decimal

	// Note is free text.
	Note string

	// PaidBy is the participant ID of the payer. Empty when unknown or when
	// the payer was deleted.
	PaidBy string

	// PaidByName is populated on reads.
	PaidByName string

	// Splits are the shares assigned to participants. Their sum is not
	// required to equal Amount.
	Splits []Split

	CreatedAt int64
	UpdatedAt int64
}

// Split is one participant's share of an expense.
type Split struct {
	ExpenseID       string
	ParticipantID   string
	ParticipantName string // populated on reads
	Amount          decimal.Decimal
}

// Validate checks the expense and its splits before they reach storage.
func (e *Expense) Validate() error {
	e.ItemName = strings.TrimSpace(e.ItemName)
	if e.ItemName == "" {
		return ErrItemNameRequired
	}
	if len(e.ItemName) > 200 {
		return ErrNameTooLong
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if !e.Amount.IsPositive() || !HasCents(e.Amount) {
		return ErrInvalidAmount
	}
	if e.Amount.GreaterThan(MaxAmount) {
		return ErrAmountTooLarge
	}

	seen := make(map[string]bool, len(e.Splits))
	for _, s := range e.Splits {
		if s.ParticipantID == "" {
			return ErrMissingShareUser
		}
		if seen[s.ParticipantID] {
			return fmt.Errorf("%w: %s", ErrDuplicateShare, s.ParticipantID)
		}
		seen[s.ParticipantID] = true
		if s.Amount.IsNegative() || !HasCents(s.Amount) {
			return ErrNegativeShare
		}
		if s.Amount.GreaterThan(MaxAmount) {
			return ErrAmountTooLarge
		}
	}
	return nil
}

// SplitTotal returns the sum of all split amounts.
func (e *Expense) SplitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range e.Splits {
		total = total.Add(s.Amount)
	}
	return total
}

// HasCents reports whether d has no more than two fraction digits.
func HasCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(2))
}

// Date and time layouts used on the wire and in storage.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDateTime combines a YYYY-MM-DD date and an optional HH:MM time into a
// time in loc. An empty time means midnight.
func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidDate, date, clock)
	}
	return t, nil
}
