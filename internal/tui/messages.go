package tui

// View identifies the visible panel of the TUI.
type View int

const (
	ViewParameters View = iota
	ViewMonthly
	ViewYearly
	ViewTrend
)

// String returns a human-readable name for a view.
func (v View) String() string {
	switch v {
	case ViewParameters:
		return "Parameters"
	case ViewMonthly:
		return "Monthly Breakdown"
	case ViewYearly:
		return "Yearly Totals"
	case ViewTrend:
		return "Trend"
	default:
		return "Unknown"
	}
}

// ExportDoneMsg signals a workbook export has finished.
type ExportDoneMsg struct {
	Path string
	Err  error
}
