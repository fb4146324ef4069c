package service

import (
	"time"

	"github.com/mmynk/expensetracker/internal/calculator"
	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/pkg/api"
)

func participantToAPI(p *models.Participant) *api.Participant {
	return &api.Participant{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func categoryToAPI(c *models.Category) *api.Category {
	return &api.Category{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt,
	}
}

func expenseToAPI(e *models.Expense) *api.Expense {
	shares := make([]*api.Share, len(e.Splits))
	for i, s := range e.Splits {
		shares[i] = &api.Share{
			ParticipantID:   s.ParticipantID,
			ParticipantName: s.ParticipantName,
			Amount:          api.NewMoney(s.Amount),
		}
	}
	return &api.Expense{
		ID:           e.ID,
		Date:         e.Date.Format(models.DateLayout),
		Time:         e.Date.Format(models.TimeLayout),
		ItemName:     e.ItemName,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		Amount:       api.NewMoney(e.Amount),
		SharesTotal:  api.NewMoney(e.SplitTotal()),
		Note:         e.Note,
		PaidBy:       e.PaidBy,
		PaidByName:   e.PaidByName,
		Shares:       shares,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// expenseFromInput validates the request fields and builds the expense with
// its splits. SplitAmong divides the amount equally; Shares are taken as-is.
func expenseFromInput(in api.ExpenseInput) (*models.Expense, error) {
	if len(in.SplitAmong) > 0 && len(in.Shares) > 0 {
		return nil, models.ErrConflictingSplit
	}

	when, err := models.ParseDateTime(in.Date, in.Time, time.Local)
	if err != nil {
		return nil, err
	}

	e := &models.Expense{
		Date:       when,
		ItemName:   in.ItemName,
		CategoryID: in.CategoryID,
		Amount:     in.Amount.Decimal,
		Note:       in.Note,
		PaidBy:     in.PaidBy,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if len(in.SplitAmong) > 0 {
		if e.Splits, err = calculator.EqualSplits(e.Amount, in.SplitAmong); err != nil {
			return nil, err
		}
		return e, nil
	}

	for _, s := range in.Shares {
		if s == nil {
			return nil, models.ErrMissingShareUser
		}
		e.Splits = append(e.Splits, models.Split{ParticipantID: s.ParticipantID, Amount: s.Amount.Decimal})
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// parseDate parses an optional YYYY-MM-DD date. Empty yields the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return models.ParseDateTime(s, "", time.Local)
}

// parseRange parses an optional inclusive date range.
func parseRange(start, end string) (models.DateRange, error) {
	var rng models.DateRange
	var err error
	if rng.Start, err = parseDate(start); err != nil {
		return rng, err
	}
	if rng.End, err = parseDate(end); err != nil {
		return rng, err
	}
	if !rng.Start.IsZero() && !rng.End.IsZero() && rng.Start.After(rng.End) {
		return rng, models.ErrInvalidRange
	}
	return rng, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}
