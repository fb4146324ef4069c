// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/expensetracker/internal/models"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidReference is returned when a write refers to a participant,
	// category or expense that does not exist, or repeats a unique pair.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidSort is returned for an unknown expense sort key.
	ErrInvalidSort = errors.New("sort must be one of -date, date, -amount, amount, category")
)

// PageSize is the number of expenses per ListExpenses page.
const PageSize = 15

// Sort orders an expense listing.
type Sort string

const (
	SortDateDesc   Sort = "-date"
	SortDateAsc    Sort = "date"
	SortAmountDesc Sort = "-amount"
	SortAmountAsc  Sort = "amount"
	SortCategory   Sort = "category"
)

// ParseSort validates a sort key. Empty means SortDateDesc.
func ParseSort(s string) (Sort, error) {
	switch v := Sort(s); v {
	case "":
		return SortDateDesc, nil
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc, SortCategory:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
}

// ExpenseFilter narrows ListExpenses.
type ExpenseFilter struct {
	Range      models.DateRange
	CategoryID string

	// Keyword matches item name or note, case-insensitively.
	Keyword string

	Sort Sort

	// Page is 1-based. Out-of-range pages are clamped.
	Page int
}

// ExpensePage is one page of a listing.
type ExpensePage struct {
	Expenses  []*models.Expense
	Total     int
	Page      int
	PageCount int
}

// Store defines the interface for expense tracker storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreateParticipant persists a new participant. ID and CreatedAt are
	// populated by the store.
	CreateParticipant(ctx context.Context, p *models.Participant) error
	GetParticipant(ctx context.Context, id string) (*models.Participant, error)
	ListParticipants(ctx context.Context, activeOnly bool) ([]*models.Participant, error)
	UpdateParticipant(ctx context.Context, p *models.Participant) error

	// DeleteParticipant removes a participant and their splits. Expenses they
	// paid for keep existing with no payer.
	DeleteParticipant(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, c *models.Category) error
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)

	// DeleteCategory removes a category. Its expenses become unclassified.
	DeleteCategory(ctx context.Context, id string) error

	// CreateExpense persists an expense and its splits atomically.
	CreateExpense(ctx context.Context, e *models.Expense) error

	// GetExpense retrieves an expense with its splits.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)

	// UpdateExpense replaces an expense's fields and all of its splits.
	UpdateExpense(ctx context.Context, e *models.Expense) error

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, id string) error

	ListExpenses(ctx context.Context, filter ExpenseFilter) (*ExpensePage, error)

	// ParticipantTotals returns, for every active participant, the sum of
	// expenses they paid and the sum of their split shares.
	ParticipantTotals(ctx context.Context) ([]models.ParticipantTotal, error)

	// CategoryTotals returns expense sums and counts grouped by category for
	// expenses dated inside rng.
	CategoryTotals(ctx context.Context, rng models.DateRange) ([]models.CategoryTotal, error)

	// Close releases any resources held by the store.
	Close() error
}
