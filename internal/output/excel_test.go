package output

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bajramiymer-oss/earncalc/internal/calculation"
	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

func TestExcelExporter_WorkbookLayout(t *testing.T) {
	params := domain.DefaultParameters()
	params.Months = 14
	result, err := calculation.NewProjectionEngine().Run(params)
	require.NoError(t, err)

	exporter := NewExcelExporter()
	exporter.Now = func() time.Time {
		return time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	}

	path := filepath.Join(t.TempDir(), "payments.xlsx")
	require.NoError(t, exporter.WriteFile(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, []string{"Sheet1", "Foglio1"}, sheets)

	// Inputs block
	a1, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Inputs", a1)

	a2, _ := f.GetCellValue("Sheet1", "A2")
	b2, _ := f.GetCellValue("Sheet1", "B2")
	assert.Equal(t, "Months", a2)
	assert.Equal(t, "14", b2)

	// 22 input pairs occupy rows 2..23; the monthly header lands on row 25
	// after one blank row.
	head, _ := f.GetCellValue("Sheet1", "A25")
	assert.Equal(t, "Month", head)
	lastHead, _ := f.GetCellValue("Sheet1", "K25")
	assert.Equal(t, "Total Monthly Earnings", lastHead)

	firstMonth, _ := f.GetCellValue("Sheet1", "A26")
	assert.Equal(t, "1", firstMonth)
	lastMonth, _ := f.GetCellValue("Sheet1", "A39")
	assert.Equal(t, "14", lastMonth)

	// Summary sheet
	title, _ := f.GetCellValue("Foglio1", "A1")
	assert.Equal(t, "Payments – Summary", title)
	generated, _ := f.GetCellValue("Foglio1", "B2")
	assert.Equal(t, "2026-08-29 10:30", generated)

	yearHead, _ := f.GetCellValue("Foglio1", "A4")
	assert.Equal(t, "Year", yearHead)
	year1, _ := f.GetCellValue("Foglio1", "A5")
	assert.Equal(t, "1", year1)
	year2, _ := f.GetCellValue("Foglio1", "A6")
	assert.Equal(t, "2", year2)
}

func TestExcelExporter_ChurnModePlaceholders(t *testing.T) {
	params := domain.DefaultParameters()
	params.Months = 2
	params.CancellationMode = domain.CancellationChurn
	result, err := calculation.NewProjectionEngine().Run(params)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "churn.xlsx")
	require.NoError(t, NewExcelExporter().WriteFile(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// "Cancellations / month (if Fixed)" is row 8 of the inputs block
	label, _ := f.GetCellValue("Sheet1", "A8")
	value, _ := f.GetCellValue("Sheet1", "B8")
	assert.Equal(t, "Cancellations / month (if Fixed)", label)
	assert.Equal(t, "-", value)

	// monthly rows dash the cancellations column too
	cancel, _ := f.GetCellValue("Sheet1", "C26")
	assert.Equal(t, "-", cancel)
}

func TestExcelExporter_WriteToWriter(t *testing.T) {
	params := domain.DefaultParameters()
	params.Months = 3
	result, err := calculation.NewProjectionEngine().Run(params)
	require.NoError(t, err)

	var buf writerCounter
	require.NoError(t, NewExcelExporter().Write(result, &buf))
	assert.Greater(t, buf.n, 0, "workbook bytes should be streamed")
}

type writerCounter struct{ n int }

func (w *writerCounter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}
