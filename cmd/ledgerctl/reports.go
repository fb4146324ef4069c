package main

import (
	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/expensetracker/pkg/api"
)

func newSettleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "settle",
		Short: "Show balances and the transfers that settle them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.printer()
			if err != nil {
				return err
			}
			resp, err := c.reports().GetSettlement(cmd.Context(), connect.NewRequest(&api.GetSettlementRequest{}))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tw := newTable(w)
			printf(tw, "NAME\tPAID\tOWED\tBALANCE\n")
			for _, b := range resp.Msg.Balances {
				printf(tw, "%s\t%s\t%s\t%s\n", b.Name, money(p, b.Paid), money(p, b.Owed), money(p, b.Balance))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(resp.Msg.Transfers) == 0 {
				printf(w, "\nall settled\n")
				return nil
			}
			printf(w, "\n")
			for _, t := range resp.Msg.Transfers {
				printf(w, "%s -> %s: %s\n", t.From, t.To, money(p, t.Amount))
			}
			return nil
		},
	}
}

func newStatsCmd(c *cli) *cobra.Command {
	var req api.GetStatisticsRequest
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show spending by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.printer()
			if err != nil {
				return err
			}
			resp, err := c.reports().GetStatistics(cmd.Context(), connect.NewRequest(&req))
			if err != nil {
				return err
			}

			s := resp.Msg
			w := cmd.OutOrStdout()
			printf(w, "%s %s..%s: %s in %d expenses\n",
				s.Period, orDash(s.StartDate), orDash(s.EndDate), money(p, s.TotalAmount), s.ExpenseCount)
			tw := newTable(w)
			for _, cat := range s.Categories {
				printf(tw, "%s\t%s\t%s\n", cat.Name, money(p, cat.Total), percent(p, cat.Percentage))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&req.Period, "period", "all", "one of day, week, month, all")
	cmd.Flags().StringVar(&req.StartDate, "from", "", "first date for --period all, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.EndDate, "to", "", "last date for --period all, YYYY-MM-DD")
	return cmd
}
