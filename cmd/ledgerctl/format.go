package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mmynk/expensetracker/pkg/api"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// money renders an amount with two decimals and locale grouping.
func money(p *message.Printer, m api.Money) string {
	return p.Sprint(number.Decimal(m.InexactFloat64(), number.Scale(2)))
}

func percent(p *message.Printer, f float64) string {
	return p.Sprint(number.Decimal(f, number.Scale(1))) + "%"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
