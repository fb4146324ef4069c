package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/internal/calculator"
	"github.com/mmynk/expensetracker/internal/middleware"
	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/storage"
	"github.com/mmynk/expensetracker/pkg/api"
	"github.com/mmynk/expensetracker/pkg/api/apiconnect"
)

// ReportService implements the Connect ReportService
type ReportService struct {
	apiconnect.UnimplementedReportServiceHandler
	store   storage.Store
	metrics *middleware.Metrics
	now     func() time.Time
}

// NewReportService creates a new ReportService. metrics may be nil.
func NewReportService(store storage.Store, metrics *middleware.Metrics) *ReportService {
	return &ReportService{store: store, metrics: metrics, now: time.Now}
}

// GetStatistics totals expenses by category over a period.
func (s *ReportService) GetStatistics(ctx context.Context, req *connect.Request[api.GetStatisticsRequest]) (*connect.Response[api.GetStatisticsResponse], error) {
	period, err := models.ParsePeriod(req.Msg.Period)
	if err != nil {
		return nil, toConnectError(err)
	}
	explicit, err := parseRange(req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		return nil, toConnectError(err)
	}

	rng := calculator.ResolvePeriod(period, s.now(), explicit)

	totals, err := s.store.CategoryTotals(ctx, rng)
	if err != nil {
		slog.Error("GetStatistics failed", "period", period, "error", err)
		return nil, toConnectError(err)
	}

	stats := calculator.BuildStatistics(period, rng, totals)

	categories := make([]*api.CategoryStat, len(stats.Categories))
	for i, c := range stats.Categories {
		categories[i] = &api.CategoryStat{
			Name:       c.Name,
			Color:      c.Color,
			Total:      api.NewMoney(c.Total),
			Percentage: c.Percentage,
		}
	}

	return connect.NewResponse(&api.GetStatisticsResponse{
		Period:       string(stats.Period),
		StartDate:    formatDate(stats.Range.Start),
		EndDate:      formatDate(stats.Range.End),
		TotalAmount:  api.NewMoney(stats.TotalAmount),
		ExpenseCount: stats.ExpenseCount,
		Categories:   categories,
	}), nil
}

// GetSettlement suggests the transfers that bring every active participant's
// balance to zero.
func (s *ReportService) GetSettlement(ctx context.Context, _ *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	totals, err := s.store.ParticipantTotals(ctx)
	if err != nil {
		slog.Error("GetSettlement failed", "error", err)
		return nil, toConnectError(err)
	}

	settlement := calculator.Settle(totals)
	s.metrics.ObserveSettlement(len(settlement.Transfers))

	slog.Debug("Settlement computed",
		"participants", len(totals),
		"transfers", len(settlement.Transfers),
	)

	transfers := make([]*api.Transfer, len(settlement.Transfers))
	for i, t := range settlement.Transfers {
		transfers[i] = &api.Transfer{From: t.FromName, To: t.ToName, Amount: api.NewMoney(t.Amount)}
	}
	balances := make([]*api.Balance, len(settlement.Summaries))
	for i, b := range settlement.Summaries {
		balances[i] = &api.Balance{
			ParticipantID: b.ParticipantID,
			Name:          b.Name,
			Paid:          api.NewMoney(b.Paid),
			Owed:          api.NewMoney(b.Owed),
			Balance:       api.NewMoney(b.Balance),
		}
	}

	return connect.NewResponse(&api.GetSettlementResponse{
		Transfers: transfers,
		Balances:  balances,
	}), nil
}
