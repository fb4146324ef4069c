// Command ledgerctl talks to the expense tracker server from the terminal.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/expensetracker/internal/middleware"
	"github.com/mmynk/expensetracker/pkg/api/apiconnect"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli holds the flags shared by every subcommand and builds clients from them.
type cli struct {
	server  string
	token   string
	lang    string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Manage shared expenses on an expense tracker server",
		Long: `ledgerctl records participants, categories and expenses, and reports
statistics and settlements from a running expense tracker server.

Set LEDGER_SERVER and LEDGER_TOKEN to avoid repeating --server and --token.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.server, "server", envOr("LEDGER_SERVER", "http://localhost:8080"), "server base URL")
	root.PersistentFlags().StringVar(&c.token, "token", os.Getenv("LEDGER_TOKEN"), "bearer token when the server requires auth")
	root.PersistentFlags().StringVar(&c.lang, "lang", "en", "language tag for number formatting")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(
		newParticipantsCmd(c),
		newCategoriesCmd(c),
		newExpensesCmd(c),
		newSettleCmd(c),
		newStatsCmd(c),
		newTokenCmd(),
	)
	return root
}

func (c *cli) httpClient() *http.Client {
	return &http.Client{Timeout: c.timeout}
}

func (c *cli) options() []connect.ClientOption {
	if c.token == "" {
		return nil
	}
	return []connect.ClientOption{connect.WithInterceptors(middleware.BearerCredentials(c.token))}
}

func (c *cli) participants() apiconnect.ParticipantServiceClient {
	return apiconnect.NewParticipantServiceClient(c.httpClient(), c.server, c.options()...)
}

func (c *cli) categories() apiconnect.CategoryServiceClient {
	return apiconnect.NewCategoryServiceClient(c.httpClient(), c.server, c.options()...)
}

func (c *cli) expenses() apiconnect.ExpenseServiceClient {
	return apiconnect.NewExpenseServiceClient(c.httpClient(), c.server, c.options()...)
}

func (c *cli) reports() apiconnect.ReportServiceClient {
	return apiconnect.NewReportServiceClient(c.httpClient(), c.server, c.options()...)
}

// printer formats amounts with the digit grouping of --lang.
func (c *cli) printer() (*message.Printer, error) {
	tag, err := language.Parse(c.lang)
	if err != nil {
		return nil, fmt.Errorf("invalid --lang %q: %w", c.lang, err)
	}
	return message.NewPrinter(tag), nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
