package calculator

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/mmynk/expensetracker/internal/models"
)

func TestBuildStatistics(t *testing.T) {
	tests := []struct {
		name      string
		totals    []models.CategoryTotal
		wantTotal string
		wantCount int
		want      []models.CategoryBreakdown
	}{
		{
			name: "sixty forty",
			totals: []models.CategoryTotal{
				{CategoryID: "c2", Name: "Transport", Color: "#00f", Total: d("40"), Count: 1},
				{CategoryID: "c1", Name: "Food", Color: "#f00", Total: d("60"), Count: 2},
			},
			wantTotal: "100",
			wantCount: 3,
			want: []models.CategoryBreakdown{
				{Name: "Food", Color: "#f00", Total: d("60"), Percentage: 60.0},
				{Name: "Transport", Color: "#00f", Total: d("40"), Percentage: 40.0},
			},
		},
		{
			name: "unclassified gets default label and color",
			totals: []models.CategoryTotal{
				{Total: d("10"), Count: 1},
				{CategoryID: "c1", Name: "Food", Color: "", Total: d("20"), Count: 1},
			},
			wantTotal: "30",
			wantCount: 2,
			want: []models.CategoryBreakdown{
				{Name: "Food", Color: models.DefaultCategoryColor, Total: d("20"), Percentage: 66.7},
				{Name: models.UnclassifiedCategoryName, Color: models.DefaultCategoryColor, Total: d("10"), Percentage: 33.3},
			},
		},
		{
			name:      "empty",
			totals:    nil,
			wantTotal: "0",
			want:      []models.CategoryBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildStatistics(models.PeriodAll, models.DateRange{}, tt.totals)
			if !got.TotalAmount.Equal(d(tt.wantTotal)) {
				t.Errorf("TotalAmount = %s, want %s", got.TotalAmount, tt.wantTotal)
			}
			if got.ExpenseCount != tt.wantCount {
				t.Errorf("ExpenseCount = %d, want %d", got.ExpenseCount, tt.wantCount)
			}
			if diff := cmp.Diff(tt.want, got.Categories, decimalComparer); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPercentageZeroWhole(t *testing.T) {
	if got := Percentage(decimal.Zero, decimal.Zero); got != 0 {
		t.Errorf("Percentage(0, 0) = %v, want 0", got)
	}
}

func TestResolvePeriod(t *testing.T) {
	// Thursday
	today := time.Date(2026, 10, 15, 17, 45, 0, 0, time.UTC)
	date := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	explicit := models.DateRange{Start: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}

	tests := []struct {
		period models.Period
		today  time.Time
		want   models.DateRange
	}{
		{models.PeriodDay, today, models.DateRange{Start: date(2026, 10, 15), End: date(2026, 10, 15)}},
		{models.PeriodWeek, today, models.DateRange{Start: date(2026, 10, 12), End: date(2026, 10, 18)}},
		{models.PeriodWeek, date(2026, 10, 18), models.DateRange{Start: date(2026, 10, 12), End: date(2026, 10, 18)}},
		{models.PeriodWeek, date(2026, 10, 12), models.DateRange{Start: date(2026, 10, 12), End: date(2026, 10, 18)}},
		{models.PeriodMonth, today, models.DateRange{Start: date(2026, 10, 1), End: date(2026, 10, 31)}},
		{models.PeriodMonth, date(2028, 2, 10), models.DateRange{Start: date(2028, 2, 1), End: date(2028, 2, 29)}},
		{models.PeriodAll, today, models.DateRange{Start: date(2026, 1, 5)}},
	}

	for _, tt := range tests {
		t.Run(string(tt.period)+" "+tt.today.Format("2006-01-02"), func(t *testing.T) {
			got := ResolvePeriod(tt.period, tt.today, explicit)
			if !got.Start.Equal(tt.want.Start) || !got.End.Equal(tt.want.End) {
				t.Errorf("ResolvePeriod() = %v..%v, want %v..%v", got.Start, got.End, tt.want.Start, tt.want.End)
			}
		})
	}
}
