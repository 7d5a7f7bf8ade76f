package output

import (
	"bytes"
	"fmt"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// ConsoleFormatter renders the monthly breakdown and yearly totals as
// fixed-width text tables.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	params := result.Parameters
	cur := params.Currency

	fmt.Fprintln(buf, "=================================================================================")
	fmt.Fprintln(buf, "AGENT EARNINGS PROJECTION")
	fmt.Fprintln(buf, "=================================================================================")
	fmt.Fprintf(buf, "Run: %s\n", params.Describe())
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "MONTHLY BREAKDOWN")
	fmt.Fprintln(buf, "-----------------")
	fmt.Fprintf(buf, "%5s %8s %8s %6s %8s %8s %10s %14s %12s %12s %14s\n",
		"Month", "New", "Cancel", "Mode", "Net", "Signed", "Paying", "Gross", "Bonus", "Commission", "Total")
	for _, row := range result.Rows {
		fmt.Fprintf(buf, "%5d %8d %8s %6s %8d %8d %10s %14s %12s %12s %14s\n",
			row.Month,
			row.NewClients,
			cancellationsCell(row),
			row.Mode.Label(),
			row.NetActivations,
			row.SignedCum,
			row.PayingClients.StringFixed(2),
			FormatMoney(cur, row.GrossClientPayments),
			FormatMoney(cur, row.NewSaleIncome),
			FormatMoney(cur, row.CommissionFromClients),
			FormatMoney(cur, row.TotalEarnings))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "YEARLY TOTALS")
	fmt.Fprintln(buf, "-------------")
	fmt.Fprintf(buf, "%5s %16s %14s %14s %16s\n",
		"Year", "Client Payments", "New Sale", "Commission", "Total Earnings")
	for _, yt := range result.Yearly {
		fmt.Fprintf(buf, "%5d %16s %14s %14s %16s\n",
			yt.Year,
			FormatMoney(cur, yt.GrossClientPayments),
			FormatMoney(cur, yt.NewSaleIncome),
			FormatMoney(cur, yt.CommissionFromClients),
			FormatMoney(cur, yt.TotalEarnings))
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Total earnings over %d months: %s\n",
		params.Months, FormatMoney(cur, result.TotalEarnings()))

	return buf.Bytes(), nil
}
