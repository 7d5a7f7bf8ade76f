package output

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// Legacy sheet names preserved for compatibility with prior exports.
const (
	detailSheet  = "Sheet1"
	summarySheet = "Foglio1"
)

// ExcelExporter serializes a projection result plus its parameter set into
// a two-sheet workbook: a parameters-and-monthly-detail sheet and a yearly
// summary sheet. Sheet names, cell layout and column order follow the
// historical export format.
type ExcelExporter struct {
	// Now is the export timestamp source; overridable in tests.
	Now func() time.Time
}

// NewExcelExporter creates an exporter using wall-clock time.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{Now: time.Now}
}

// WriteFile builds the workbook and saves it at path.
func (e *ExcelExporter) WriteFile(result *domain.ProjectionResult, path string) error {
	f, err := e.build(result)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// Write builds the workbook and streams it to w.
func (e *ExcelExporter) Write(result *domain.ProjectionResult, w io.Writer) error {
	f, err := e.build(result)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (e *ExcelExporter) build(result *domain.ProjectionResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := e.writeDetailSheet(f, result); err != nil {
		f.Close()
		return nil, err
	}
	if err := e.writeSummarySheet(f, result); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// inputPairs lists the parameter key/value block in its fixed export order.
// Mode-inapplicable entries render as "-" rather than being omitted, so the
// block always has the same shape.
func inputPairs(params *domain.ParameterSet) []struct {
	Key   string
	Value any
} {
	overrideMonth := any("-")
	overrideClients := any("-")
	if params.Override.Enabled && params.Override.Month > 0 {
		overrideMonth = params.Override.Month
		overrideClients = params.Override.NewClients
	}
	cancellations := any("-")
	churn := any("-")
	if params.CancellationMode == domain.CancellationFixed {
		cancellations = params.FixedCancellations
	} else {
		churn = params.ChurnPercent.InexactFloat64()
	}

	return []struct {
		Key   string
		Value any
	}{
		{"Months", params.Months},
		{"Currency", params.Currency},
		{"New Clients / month (default)", params.NewClientsPerMonth},
		{"Override month", overrideMonth},
		{"Override New Clients", overrideClients},
		{"Cancellations mode", params.CancellationMode.Label()},
		{"Cancellations / month (if Fixed)", cancellations},
		{"Churn % (if Churn)", churn},
		{"Lifetime (months)", params.LifetimeMonths},
		{"Lifetime mode", params.LifetimeMode.Label()},
		{"Contract Type", params.Contract.Type.Label()},
		{"Free Months", params.Contract.FreeMonths},
		{"Intro Months", params.Contract.IntroMonths},
		{"Intro Amount", params.Contract.IntroAmount.InexactFloat64()},
		{"Recurring Amount", params.Contract.RecurringAmount.InexactFloat64()},
		{"Flat Amount", params.Contract.FlatAmount.InexactFloat64()},
		{"Commission Rate (%)", params.CommissionPercent.InexactFloat64()},
		{"Payout policy", params.PayoutPolicy.Label()},
		{"Payout type", params.PayoutType.Label()},
		{"Use New Sale Payout", params.Bonus.Enabled},
		{"New Sale Payout", params.Bonus.AmountPerClient.InexactFloat64()},
		{"Payout duration (months)", params.Bonus.DurationMonths},
	}
}

func (e *ExcelExporter) writeDetailSheet(f *excelize.File, result *domain.ProjectionResult) error {
	if err := f.SetCellValue(detailSheet, "A1", "Inputs"); err != nil {
		return err
	}

	row := 2
	for _, kv := range inputPairs(result.Parameters) {
		if err := f.SetCellValue(detailSheet, fmt.Sprintf("A%d", row), kv.Key); err != nil {
			return err
		}
		if err := f.SetCellValue(detailSheet, fmt.Sprintf("B%d", row), kv.Value); err != nil {
			return err
		}
		row++
	}

	headerRow := row + 1
	for col, h := range monthlyHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(detailSheet, cell, h); err != nil {
			return err
		}
	}

	for i, mr := range result.Rows {
		cancellations := any(mr.Cancellations)
		if mr.Mode == domain.CancellationChurn {
			cancellations = "-"
		}
		values := []any{
			mr.Month,
			mr.NewClients,
			cancellations,
			mr.Mode.Label(),
			mr.NetActivations,
			mr.SignedCum,
			mr.PayingClients.InexactFloat64(),
			mr.GrossClientPayments.InexactFloat64(),
			mr.NewSaleIncome.InexactFloat64(),
			mr.CommissionFromClients.InexactFloat64(),
			mr.TotalEarnings.InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, headerRow+1+i)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(detailSheet, cell, v); err != nil {
				return err
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(monthlyHeader))
	if err != nil {
		return err
	}
	return f.SetColWidth(detailSheet, "A", lastCol, 24)
}

func (e *ExcelExporter) writeSummarySheet(f *excelize.File, result *domain.ProjectionResult) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	if err := f.SetCellValue(summarySheet, "A1", "Payments – Summary"); err != nil {
		return err
	}
	if err := f.SetCellValue(summarySheet, "A2", "Generated"); err != nil {
		return err
	}
	if err := f.SetCellValue(summarySheet, "B2", e.Now().Format("2006-01-02 15:04")); err != nil {
		return err
	}

	if len(result.Yearly) > 0 {
		header := []string{"Year", "Client Payments (Gross)", "New Sale Income", "Commission from Clients", "Total Yearly Earnings"}
		for col, h := range header {
			cell, err := excelize.CoordinatesToCellName(col+1, 4)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, h); err != nil {
				return err
			}
		}
		for i, yt := range result.Yearly {
			values := []any{
				yt.Year,
				yt.GrossClientPayments.InexactFloat64(),
				yt.NewSaleIncome.InexactFloat64(),
				yt.CommissionFromClients.InexactFloat64(),
				yt.TotalEarnings.InexactFloat64(),
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, 5+i)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(summarySheet, cell, v); err != nil {
					return err
				}
			}
		}
	}

	return f.SetColWidth(summarySheet, "A", "F", 28)
}
