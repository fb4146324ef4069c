package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/internal/storage"
	"github.com/mmynk/expensetracker/pkg/api"
	"github.com/mmynk/expensetracker/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateExpense records an expense and its shares.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"item", req.Msg.ItemName,
		"amount", req.Msg.Amount.String(),
		"split_among", len(req.Msg.SplitAmong),
		"shares", len(req.Msg.Shares),
	)

	e, err := expenseFromInput(req.Msg.ExpenseInput)
	if err != nil {
		slog.Warn("CreateExpense validation failed", "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateExpense(ctx, e); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, toConnectError(err)
	}

	// Re-read to pick up payer, category and participant names.
	saved, err := s.store.GetExpense(ctx, e.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Expense created",
		"expense_id", saved.ID,
		"shares", len(saved.Splits),
		"split_total", saved.SplitTotal().StringFixed(2),
	)

	return connect.NewResponse(&api.CreateExpenseResponse{Expense: expenseToAPI(saved)}), nil
}

// GetExpense returns one expense with its shares.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	e, err := s.store.GetExpense(ctx, req.Msg.ID)
	if err != nil {
		slog.Warn("GetExpense failed", "expense_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetExpenseResponse{Expense: expenseToAPI(e)}), nil
}

// UpdateExpense replaces an expense and all of its shares.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received", "expense_id", req.Msg.ID)

	e, err := expenseFromInput(req.Msg.ExpenseInput)
	if err != nil {
		return nil, toConnectError(err)
	}
	e.ID = req.Msg.ID

	if err := s.store.UpdateExpense(ctx, e); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", e.ID, "error", err)
		return nil, toConnectError(err)
	}

	saved, err := s.store.GetExpense(ctx, e.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdateExpenseResponse{Expense: expenseToAPI(saved)}), nil
}

// DeleteExpense removes an expense and its shares.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ID)

	if err := s.store.DeleteExpense(ctx, req.Msg.ID); err != nil {
		slog.Warn("DeleteExpense failed", "expense_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// ListExpenses returns one page of expenses, newest first unless sorted otherwise.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	rng, err := parseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnectError(err)
	}
	sort, err := storage.ParseSort(req.Msg.SortBy)
	if err != nil {
		return nil, toConnectError(err)
	}

	page, err := s.store.ListExpenses(ctx, storage.ExpenseFilter{
		Range:      rng,
		CategoryID: req.Msg.CategoryID,
		Keyword:    req.Msg.Keyword,
		Sort:       sort,
		Page:       req.Msg.Page,
	})
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Expense, len(page.Expenses))
	for i, e := range page.Expenses {
		out[i] = expenseToAPI(e)
	}

	return connect.NewResponse(&api.ListExpensesResponse{
		Expenses:  out,
		Total:     page.Total,
		Page:      page.Page,
		PageCount: page.PageCount,
	}), nil
}
