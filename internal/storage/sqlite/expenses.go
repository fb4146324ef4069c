package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/storage"
)

const expenseColumns = `e.id, e.date, e.time, e.item_name, e.category_id, COALESCE(c.name, ''),
	e.amount_cents, e.note, e.paid_by, COALESCE(p.name, ''), e.created_at, e.updated_at`

const expenseJoins = `FROM expenses e
	LEFT JOIN expense_categories c ON c.id = e.category_id
	LEFT JOIN participants p ON p.id = e.paid_by`

var sortClauses = map[storage.Sort]string{
	storage.SortDateDesc:   "e.date DESC, e.time DESC, e.created_at DESC, e.id",
	storage.SortDateAsc:    "e.date ASC, e.time ASC, e.created_at ASC, e.id",
	storage.SortAmountDesc: "e.amount_cents DESC, e.date DESC, e.id",
	storage.SortAmountAsc:  "e.amount_cents ASC, e.date DESC, e.id",
	storage.SortCategory:   "c.name IS NULL, c.name ASC, e.date DESC, e.id",
}

// CreateExpense persists a new expense and its splits in one transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if e.CreatedAt == 0 {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkReferences(ctx, tx, e); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, date, time, item_name, category_id, amount_cents, note, paid_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Date.Format(models.DateLayout), e.Date.Format(models.TimeLayout), e.ItemName,
		nullable(e.CategoryID), toCents(e.Amount), e.Note, nullable(e.PaidBy), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", classify(err))
	}

	if err := insertSplits(ctx, tx, e); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID, including its splits.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` `+expenseJoins+` WHERE e.id = ?`,
		id,
	)
	e, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: expense %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := s.loadSplits(ctx, []*models.Expense{e}); err != nil {
		return nil, err
	}

	return e, nil
}

// UpdateExpense rewrites an expense and replaces all of its splits.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, e *models.Expense) error {
	e.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkReferences(ctx, tx, e); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses
		 SET date = ?, time = ?, item_name = ?, category_id = ?, amount_cents = ?, note = ?, paid_by = ?, updated_at = ?
		 WHERE id = ?`,
		e.Date.Format(models.DateLayout), e.Date.Format(models.TimeLayout), e.ItemName,
		nullable(e.CategoryID), toCents(e.Amount), e.Note, nullable(e.PaidBy), e.UpdatedAt, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", classify(err))
	}
	if err := requireAffected(res, "expense", e.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", e.ID); err != nil {
		return fmt.Errorf("failed to clear splits: %w", err)
	}
	if err := insertSplits(ctx, tx, e); err != nil {
		return err
	}

	if err := tx.QueryRowContext(ctx, "SELECT created_at FROM expenses WHERE id = ?", e.ID).Scan(&e.CreatedAt); err != nil {
		return fmt.Errorf("failed to read expense: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteExpense removes an expense by ID. Its splits cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireAffected(res, "expense", id)
}

// ListExpenses returns one page of expenses matching the filter.
func (s *SQLiteStore) ListExpenses(ctx context.Context, f storage.ExpenseFilter) (*storage.ExpensePage, error) {
	order, ok := sortClauses[f.Sort]
	if !ok {
		if f.Sort != "" {
			return nil, fmt.Errorf("%w: %q", storage.ErrInvalidSort, f.Sort)
		}
		order = sortClauses[storage.SortDateDesc]
	}

	where, args := expenseWhere(f)

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expenses e `+where, args...,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count expenses: %w", err)
	}

	page := &storage.ExpensePage{
		Total:     total,
		PageCount: max(1, (total+storage.PageSize-1)/storage.PageSize),
	}
	page.Page = min(max(f.Page, 1), page.PageCount)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` `+expenseJoins+` `+where+
			` ORDER BY `+order+` LIMIT ? OFFSET ?`,
		append(args, storage.PageSize, (page.Page-1)*storage.PageSize)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		page.Expenses = append(page.Expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	if err := s.loadSplits(ctx, page.Expenses); err != nil {
		return nil, err
	}

	return page, nil
}

// expenseWhere builds the WHERE clause shared by listing and counting.
func expenseWhere(f storage.ExpenseFilter) (string, []any) {
	conds, args := dateConds(f.Range)

	if f.CategoryID != "" {
		conds = append(conds, "e.category_id = ?")
		args = append(args, f.CategoryID)
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		pattern := "%" + escapeLike(kw) + "%"
		conds = append(conds, `(e.item_name LIKE ? ESCAPE '\' OR e.note LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// dateConds restricts e.date to an inclusive range. Zero bounds are open.
func dateConds(rng models.DateRange) ([]string, []any) {
	var conds []string
	var args []any
	if !rng.Start.IsZero() {
		conds = append(conds, "e.date >= ?")
		args = append(args, rng.Start.Format(models.DateLayout))
	}
	if !rng.End.IsZero() {
		conds = append(conds, "e.date <= ?")
		args = append(args, rng.End.Format(models.DateLayout))
	}
	return conds, args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// checkReferences verifies the payer, category and split participants exist
// so callers get a precise error instead of a bare constraint failure.
func checkReferences(ctx context.Context, tx *sql.Tx, e *models.Expense) error {
	if e.PaidBy != "" {
		ok, err := rowExists(ctx, tx, "participants", e.PaidBy)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: payer %s does not exist", storage.ErrInvalidReference, e.PaidBy)
		}
	}
	if e.CategoryID != "" {
		ok, err := rowExists(ctx, tx, "expense_categories", e.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: category %s does not exist", storage.ErrInvalidReference, e.CategoryID)
		}
	}
	for _, split := range e.Splits {
		ok, err := rowExists(ctx, tx, "participants", split.ParticipantID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: participant %s does not exist", storage.ErrInvalidReference, split.ParticipantID)
		}
	}
	return nil
}

func insertSplits(ctx context.Context, tx *sql.Tx, e *models.Expense) error {
	for i := range e.Splits {
		split := &e.Splits[i]
		split.ExpenseID = e.ID
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, participant_id, share_cents) VALUES (?, ?, ?)",
			e.ID, split.ParticipantID, toCents(split.Amount),
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", classify(err))
		}
	}
	return nil
}

// loadSplits attaches splits to the given expenses with a single query.
func (s *SQLiteStore) loadSplits(ctx context.Context, expenses []*models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	byID := make(map[string]*models.Expense, len(expenses))
	args := make([]any, len(expenses))
	for i, e := range expenses {
		byID[e.ID] = e
		args[i] = e.ID
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT s.expense_id, s.participant_id, p.name, s.share_cents
		 FROM expense_splits s JOIN participants p ON p.id = s.participant_id
		 WHERE s.expense_id IN (?`+repeatPlaceholder(len(expenses)-1)+`)
		 ORDER BY p.name, s.participant_id`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var split models.Split
		var cents int64
		if err := rows.Scan(&split.ExpenseID, &split.ParticipantID, &split.ParticipantName, &cents); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		split.Amount = fromCents(cents)
		if e, ok := byID[split.ExpenseID]; ok {
			e.Splits = append(e.Splits, split)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate splits: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*models.Expense, error) {
	var (
		e              models.Expense
		date, clock    string
		category, paid sql.NullString
		cents          int64
	)
	if err := row.Scan(&e.ID, &date, &clock, &e.ItemName, &category, &e.CategoryName,
		&cents, &e.Note, &paid, &e.PaidByName, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}

	when, err := models.ParseDateTime(date, clock, time.Local)
	if err != nil {
		return nil, err
	}
	e.Date = when
	e.Amount = fromCents(cents)
	e.CategoryID = category.String
	e.PaidBy = paid.String

	return &e, nil
}
