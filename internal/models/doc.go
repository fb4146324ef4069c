// Package models defines the core domain models for the expense tracker.
//
// # Models
//
//   - Participant: a person who pays for expenses and owes shares of them
//   - Category: a label with display metadata, referenced by expenses
//   - Expense: a monetary event with an optional payer and category
//   - Split: one participant's share of one expense
//
// Settlement and statistics results (Transfer, ParticipantSummary, Statistics)
// are computed by the calculator package and are never persisted.
//
// # Relationships
//
// Relationships are ID strings, never pointers:
//  1. Expense.PaidBy and Expense.CategoryID are optional references. Deleting the
//     referenced row clears the reference.
//  2. Splits are owned by their expense and are deleted with it, or with their participant.
//  3. At most one split exists per (expense, participant) pair.
//
// The sum of an expense's splits is not required to equal its amount.
//
// # Money
//
// All amounts are decimal.Decimal with two fraction digits. Storage keeps them as
// integer cents so aggregation stays exact.
package models
