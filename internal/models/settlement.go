package models

import "github.com/shopspring/decimal"

// ParticipantTotal is the aggregate input of the settlement engine for one
// active participant.
type ParticipantTotal struct {
	ParticipantID string
	Name          string

	// Paid is the sum of amounts of expenses this participant paid for.
	Paid decimal.Decimal

	// Owed is the sum of this participant's split shares.
	Owed decimal.Decimal
}

// Transfer is a suggested payment that reduces outstanding balances.
type Transfer struct {
	// FromName is the debtor.
	FromName string

	// ToName is the creditor.
	ToName string

	// Amount is rounded to two decimal places.
	Amount decimal.Decimal
}

// ParticipantSummary reports one participant's position.
type ParticipantSummary struct {
	ParticipantID string
	Name          string
	Paid          decimal.Decimal
	Owed          decimal.Decimal

	// Balance is Paid - Owed. Positive means the group owes this participant.
	Balance decimal.Decimal
}

// Settlement is the full output of the settlement engine.
type Settlement struct {
	Transfers []Transfer
	Summaries []ParticipantSummary
}
