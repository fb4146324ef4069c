package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mmynk/expensetracker/internal/models"
)

// ParticipantTotals sums paid expenses and owed shares for every active participant.
func (s *SQLiteStore) ParticipantTotals(ctx context.Context) ([]models.ParticipantTotal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.name,
		        COALESCE((SELECT SUM(e.amount_cents) FROM expenses e WHERE e.paid_by = p.id), 0),
		        COALESCE((SELECT SUM(s.share_cents) FROM expense_splits s WHERE s.participant_id = p.id), 0)
		 FROM participants p
		 WHERE p.is_active = 1
		 ORDER BY p.name, p.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sum participant totals: %w", err)
	}
	defer rows.Close()

	var totals []models.ParticipantTotal
	for rows.Next() {
		var t models.ParticipantTotal
		var paid, owed int64
		if err := rows.Scan(&t.ParticipantID, &t.Name, &paid, &owed); err != nil {
			return nil, fmt.Errorf("failed to scan participant total: %w", err)
		}
		t.Paid = fromCents(paid)
		t.Owed = fromCents(owed)
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participant totals: %w", err)
	}

	return totals, nil
}

// CategoryTotals sums expenses by category inside the inclusive date range.
func (s *SQLiteStore) CategoryTotals(ctx context.Context, rng models.DateRange) ([]models.CategoryTotal, error) {
	conds, args := dateConds(rng)
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT e.category_id, COALESCE(c.name, ''), COALESCE(c.color, ''), SUM(e.amount_cents), COUNT(*)
		 FROM expenses e
		 LEFT JOIN expense_categories c ON c.id = e.category_id
		 `+where+`
		 GROUP BY e.category_id
		 ORDER BY SUM(e.amount_cents) DESC, c.name`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category totals: %w", err)
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var t models.CategoryTotal
		var id sql.NullString
		var cents int64
		if err := rows.Scan(&id, &t.Name, &t.Color, &cents, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		t.CategoryID = id.String
		t.Total = fromCents(cents)
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category totals: %w", err)
	}

	return totals, nil
}
