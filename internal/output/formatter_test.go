package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bajramiymer-oss/earncalc/internal/calculation"
	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

func sampleResult(t *testing.T) *domain.ProjectionResult {
	t.Helper()
	params := domain.DefaultParameters()
	params.Months = 14
	params.Override = domain.FunnelOverride{Enabled: true, Month: 3, NewClients: 30}

	result, err := calculation.NewProjectionEngine().Run(params)
	require.NoError(t, err)
	return result
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "csv-yearly", "json"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q should be registered", name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("html"))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult(t))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "MONTHLY BREAKDOWN")
	assert.Contains(t, text, "YEARLY TOTALS")
	assert.Contains(t, text, "£")
	assert.Contains(t, text, "Total earnings over 14 months")
}

func TestCSVFormatter(t *testing.T) {
	result := sampleResult(t)
	data, err := CSVFormatter{}.Format(result)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 15, "header plus one record per month")

	assert.Equal(t, monthlyHeader, records[0])
	assert.Equal(t, "3", records[3][0])
	assert.Equal(t, "30", records[3][1], "override month carries the override count")
	assert.Equal(t, "2", records[3][2], "fixed mode shows the cancellation count")
}

func TestCSVFormatter_ChurnModeDashesCancellations(t *testing.T) {
	params := domain.DefaultParameters()
	params.Months = 2
	params.CancellationMode = domain.CancellationChurn
	params.ChurnPercent = decimal.NewFromInt(5)
	result, err := calculation.NewProjectionEngine().Run(params)
	require.NoError(t, err)

	data, err := CSVFormatter{}.Format(result)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, "-", records[1][2])
	assert.Equal(t, "Churn", records[1][3])
}

func TestCSVYearlyFormatter(t *testing.T) {
	data, err := CSVYearlyFormatter{}.Format(sampleResult(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one full year plus a partial year")
	assert.Equal(t, "Year", records[0][0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "2", records[2][0])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResult(t))
	require.NoError(t, err)

	var decoded struct {
		Parameters map[string]any   `json:"parameters"`
		Rows       []map[string]any `json:"rows"`
		Yearly     []map[string]any `json:"yearly"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Rows, 14)
	assert.Len(t, decoded.Yearly, 2)
	assert.EqualValues(t, 14, decoded.Parameters["months"])
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "£1234.50", FormatMoney("£", decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$0.00", FormatMoney("$", decimal.Zero))
}
