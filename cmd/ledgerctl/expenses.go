package main

import (
	"fmt"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/expensetracker/pkg/api"
)

func newExpensesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"e"},
		Short:   "List and record expenses",
	}
	cmd.AddCommand(newExpensesListCmd(c), newExpensesAddCmd(c), newExpensesShowCmd(c), newExpensesRmCmd(c))
	return cmd
}

func newExpensesListCmd(c *cli) *cobra.Command {
	var req api.ListExpensesRequest
	list := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.printer()
			if err != nil {
				return err
			}
			resp, err := c.expenses().ListExpenses(cmd.Context(), connect.NewRequest(&req))
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			printf(tw, "DATE\tITEM\tCATEGORY\tAMOUNT\tPAID BY\tID\n")
			for _, e := range resp.Msg.Expenses {
				printf(tw, "%s %s\t%s\t%s\t%s\t%s\t%s\n",
					e.Date, e.Time, e.ItemName, orDash(e.CategoryName), money(p, e.Amount), orDash(e.PaidByName), e.ID)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "page %d/%d, %d expenses\n", resp.Msg.Page, resp.Msg.PageCount, resp.Msg.Total)
			return nil
		},
	}
	list.Flags().StringVar(&req.StartDate, "from", "", "first date, YYYY-MM-DD")
	list.Flags().StringVar(&req.EndDate, "to", "", "last date, YYYY-MM-DD")
	list.Flags().StringVar(&req.CategoryID, "category", "", "category ID")
	list.Flags().StringVar(&req.Keyword, "keyword", "", "match item name or note")
	list.Flags().StringVar(&req.SortBy, "sort", "-date", "one of -date, date, -amount, amount, category")
	list.Flags().IntVar(&req.Page, "page", 1, "page number")
	return list
}

func newExpensesAddCmd(c *cli) *cobra.Command {
	var (
		in     api.ExpenseInput
		amount string
		shares []string
	)
	add := &cobra.Command{
		Use:   "add ITEM AMOUNT",
		Short: "Record an expense",
		Long: `Record an expense. Divide it equally with --split-among, or give explicit
shares with repeated --share PARTICIPANT_ID=AMOUNT.`,
		Example: `  ledgerctl expenses add Groceries 42.50 --paid-by $ALICE --split-among $ALICE,$BOB`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.ItemName = args[0]
			amount = args[1]

			total, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			in.Amount = api.NewMoney(total)
			if in.Shares, err = parseShares(shares); err != nil {
				return err
			}

			resp, err := c.expenses().CreateExpense(cmd.Context(), connect.NewRequest(&api.CreateExpenseRequest{ExpenseInput: in}))
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s\n", resp.Msg.Expense.ID)
			return nil
		},
	}
	add.Flags().StringVar(&in.Date, "date", time.Now().Format("2006-01-02"), "date, YYYY-MM-DD")
	add.Flags().StringVar(&in.Time, "time", "", "time of day, HH:MM")
	add.Flags().StringVar(&in.CategoryID, "category", "", "category ID")
	add.Flags().StringVar(&in.Note, "note", "", "free-text note")
	add.Flags().StringVar(&in.PaidBy, "paid-by", "", "payer participant ID")
	add.Flags().StringSliceVar(&in.SplitAmong, "split-among", nil, "participant IDs to split equally among")
	add.Flags().StringArrayVar(&shares, "share", nil, "explicit share as PARTICIPANT_ID=AMOUNT")
	add.MarkFlagsMutuallyExclusive("split-among", "share")
	return add
}

func newExpensesShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an expense and its shares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.printer()
			if err != nil {
				return err
			}
			resp, err := c.expenses().GetExpense(cmd.Context(), connect.NewRequest(&api.GetExpenseRequest{ID: args[0]}))
			if err != nil {
				return err
			}
			e := resp.Msg.Expense
			w := cmd.OutOrStdout()
			printf(w, "%s  %s %s  %s\n", e.ItemName, e.Date, e.Time, money(p, e.Amount))
			printf(w, "category: %s\npaid by:  %s\n", orDash(e.CategoryName), orDash(e.PaidByName))
			if e.Note != "" {
				printf(w, "note:     %s\n", e.Note)
			}
			tw := newTable(w)
			for _, s := range e.Shares {
				printf(tw, "  %s\t%s\n", s.ParticipantName, money(p, s.Amount))
			}
			return tw.Flush()
		},
	}
}

func newExpensesRmCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete an expense and its shares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.expenses().DeleteExpense(cmd.Context(), connect.NewRequest(&api.DeleteExpenseRequest{ID: args[0]}))
			return err
		},
	}
}

// parseShares turns ID=AMOUNT pairs into shares.
func parseShares(pairs []string) ([]*api.Share, error) {
	shares := make([]*api.Share, 0, len(pairs))
	for _, pair := range pairs {
		id, raw, ok := strings.Cut(pair, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid share %q: want PARTICIPANT_ID=AMOUNT", pair)
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid share amount %q: %w", raw, err)
		}
		shares = append(shares, &api.Share{ParticipantID: id, Amount: api.NewMoney(amount)})
	}
	return shares, nil
}
