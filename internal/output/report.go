package output

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// Formatter renders a projection result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.ProjectionResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	CSVYearlyFormatter{},
	JSONFormatter{},
}

// GetFormatterByName returns the named formatter, or nil if unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names, in registry order.
func FormatterNames() []string {
	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.Name()
	}
	return names
}

// GenerateReport formats the result and writes it to stdout.
func GenerateReport(result *domain.ProjectionResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// FormatMoney formats a decimal amount with the run's currency symbol.
// Currency is a display label only; no conversion or rounding policy is
// attached to it.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// FormatPercent formats a decimal as a percentage.
func FormatPercent(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// cancellationsCell renders the fixed-cancellation count, or "-" when the
// run is in churn mode and the column does not apply.
func cancellationsCell(row domain.MonthlyRow) string {
	if row.Mode == domain.CancellationChurn {
		return "-"
	}
	return fmt.Sprintf("%d", row.Cancellations)
}
