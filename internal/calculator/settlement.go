package calculator

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/expensetracker/internal/models"
)

// Tolerance is the settlement noise threshold. Transfers at or below it are
// not emitted and parties within it of zero count as settled.
var Tolerance = decimal.New(1, -2)

// party is a creditor or debtor with the amount still to be matched.
type party struct {
	id        string
	name      string
	remaining decimal.Decimal
}

// Settle computes per-participant summaries and the transfers that bring every
// balance to within Tolerance of zero.
//
// Algorithm:
//   - balance = paid - owed for each participant
//   - creditors (balance > 0) and debtors (balance < 0) sorted by size, largest first
//   - match the largest creditor with the largest debtor for min(credit, debt)
//   - skip transfers of Tolerance or less, advance past parties within Tolerance of zero
//
// The number of transfers is at most creditors + debtors - 1. Greedy matching is
// not a minimum-transaction solver.
func Settle(totals []models.ParticipantTotal) models.Settlement {
	summaries := make([]models.ParticipantSummary, 0, len(totals))
	var creditors, debtors []party

	for _, t := range totals {
		balance := t.Paid.Sub(t.Owed)
		summaries = append(summaries, models.ParticipantSummary{
			ParticipantID: t.ParticipantID,
			Name:          t.Name,
			Paid:          t.Paid,
			Owed:          t.Owed,
			Balance:       balance,
		})

		switch balance.Sign() {
		case 1:
			creditors = append(creditors, party{id: t.ParticipantID, name: t.Name, remaining: balance})
		case -1:
			debtors = append(debtors, party{id: t.ParticipantID, name: t.Name, remaining: balance.Neg()})
		}
	}

	slices.SortStableFunc(creditors, byRemainingDesc)
	slices.SortStableFunc(debtors, byRemainingDesc)

	return models.Settlement{
		Transfers: matchTransfers(creditors, debtors),
		Summaries: summaries,
	}
}

// matchTransfers runs the greedy matching loop. Both slices are consumed.
func matchTransfers(creditors, debtors []party) []models.Transfer {
	var transfers []models.Transfer
	i, j := 0, 0

	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := decimal.Min(creditor.remaining, debtor.remaining)
		if amount.GreaterThan(Tolerance) {
			transfers = append(transfers, models.Transfer{
				FromName: debtor.name,
				ToName:   creditor.name,
				Amount:   amount.RoundBank(2),
			})
		}

		creditor.remaining = creditor.remaining.Sub(amount)
		debtor.remaining = debtor.remaining.Sub(amount)

		if creditor.remaining.LessThanOrEqual(Tolerance) {
			i++
		}
		if debtor.remaining.LessThanOrEqual(Tolerance) {
			j++
		}
	}

	return transfers
}

func byRemainingDesc(a, b party) int {
	if c := b.remaining.Cmp(a.remaining); c != 0 {
		return c
	}
	if c := cmp.Compare(a.name, b.name); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}
