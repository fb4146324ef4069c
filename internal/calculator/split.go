package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/expensetracker/internal/models"
)

// EqualShares divides amount into n shares of whole cents.
// Remainder cents go one each to the first shares, so the shares always add up
// to amount. amount must have at most two decimal places.
func EqualShares(amount decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, fmt.Errorf("must have at least one participant")
	}
	if !models.HasCents(amount) || amount.IsNegative() {
		return nil, models.ErrInvalidAmount
	}

	cents := amount.Shift(2).IntPart()
	base := cents / int64(n)
	rem := cents % int64(n)

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		c := base
		if int64(i) < rem {
			c++
		}
		shares[i] = decimal.New(c, -2)
	}
	return shares, nil
}

// EqualSplits builds one split per participant ID with EqualShares amounts.
// Duplicate IDs are rejected.
func EqualSplits(amount decimal.Decimal, participantIDs []string) ([]models.Split, error) {
	seen := make(map[string]bool, len(participantIDs))
	for _, id := range participantIDs {
		if id == "" {
			return nil, models.ErrMissingShareUser
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %s", models.ErrDuplicateShare, id)
		}
		seen[id] = true
	}

	shares, err := EqualShares(amount, len(participantIDs))
	if err != nil {
		return nil, err
	}

	splits := make([]models.Split, len(participantIDs))
	for i, id := range participantIDs {
		splits[i] = models.Split{ParticipantID: id, Amount: shares[i]}
	}
	return splits, nil
}
