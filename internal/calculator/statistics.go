package calculator

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/expensetracker/internal/models"
)

var hundred = decimal.NewFromInt(100)

// BuildStatistics aggregates per-category totals into the statistics output.
// Categories are ordered by total, largest first. Percentages are rounded to
// one decimal place and are zero when the overall total is zero.
func BuildStatistics(period models.Period, rng models.DateRange, totals []models.CategoryTotal) models.Statistics {
	stats := models.Statistics{
		Period:      period,
		Range:       rng,
		TotalAmount: decimal.Zero,
		Categories:  make([]models.CategoryBreakdown, 0, len(totals)),
	}

	for _, t := range totals {
		stats.TotalAmount = stats.TotalAmount.Add(t.Total)
		stats.ExpenseCount += t.Count
	}

	for _, t := range totals {
		name, color := t.Name, t.Color
		if t.CategoryID == "" || name == "" {
			name = models.UnclassifiedCategoryName
		}
		if color == "" {
			color = models.DefaultCategoryColor
		}
		stats.Categories = append(stats.Categories, models.CategoryBreakdown{
			Name:       name,
			Color:      color,
			Total:      t.Total,
			Percentage: Percentage(t.Total, stats.TotalAmount),
		})
	}

	slices.SortStableFunc(stats.Categories, func(a, b models.CategoryBreakdown) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return stats
}

// Percentage returns part/whole*100 rounded to one decimal, or 0 when whole is zero.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).RoundBank(1).InexactFloat64()
}
