package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// monthlyHeader is the declared monthly column order. The excel export and
// the CSV formatter must agree on it for compatibility with prior exports.
var monthlyHeader = []string{
	"Month",
	"New Clients",
	"Cancellations",
	"Mode",
	"Net Activations",
	"Signed SMEs (Cumulative)",
	"Paying SMEs (this month)",
	"Client Payments (Gross)",
	"New Sale Income",
	"Commission from Clients",
	"Total Monthly Earnings",
}

// CSVFormatter writes the monthly table, one row per projected month.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(monthlyHeader); err != nil {
		return nil, err
	}
	for _, row := range result.Rows {
		record := []string{
			strconv.Itoa(row.Month),
			strconv.Itoa(row.NewClients),
			cancellationsCell(row),
			row.Mode.Label(),
			strconv.Itoa(row.NetActivations),
			strconv.Itoa(row.SignedCum),
			row.PayingClients.StringFixed(4),
			row.GrossClientPayments.StringFixed(2),
			row.NewSaleIncome.StringFixed(2),
			row.CommissionFromClients.StringFixed(2),
			row.TotalEarnings.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVYearlyFormatter writes the yearly rollup, one row per year.
type CSVYearlyFormatter struct{}

func (CSVYearlyFormatter) Name() string { return "csv-yearly" }

func (CSVYearlyFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Client Payments (Gross)", "New Sale Income", "Commission from Clients", "Total Yearly Earnings"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yt := range result.Yearly {
		record := []string{
			strconv.Itoa(yt.Year),
			yt.GrossClientPayments.StringFixed(2),
			yt.NewSaleIncome.StringFixed(2),
			yt.CommissionFromClients.StringFixed(2),
			yt.TotalEarnings.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
