package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bajramiymer-oss/earncalc/internal/output"
	"github.com/bajramiymer-oss/earncalc/internal/tui/components"
	"github.com/bajramiymer-oss/earncalc/internal/tui/tuistyles"
)

// View renders the current state of the application.
func (m Model) View() string {
	var content string
	switch m.currentView {
	case ViewParameters:
		content = m.renderParameters()
	case ViewMonthly:
		content = m.monthlyTable.View()
	case ViewYearly:
		content = m.renderYearly()
	case ViewTrend:
		content = m.renderTrend()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("Earnings Calculator")
	crumb := tuistyles.SubtitleStyle.Render(m.currentView.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, crumb, "")
}

func (m Model) renderStatusBar() string {
	parts := []string{"tab: switch view", "↑↓: navigate", "←→: adjust", "e: export", "q: quit"}
	bar := tuistyles.StatusBarStyle.Render(strings.Join(parts, " • "))
	if m.err != nil {
		bar += "\n" + tuistyles.ErrorStyle.Render(m.err.Error())
	} else if m.status != "" {
		bar += "\n" + tuistyles.InfoStyle.Render(m.status)
	}
	return "\n" + bar
}

func (m Model) renderParameters() string {
	var lines []string
	for _, i := range m.visibleFields() {
		lines = append(lines, m.fields[i].render())
	}

	form := strings.Join(lines, "\n")

	summary := ""
	if m.result != nil {
		cur := m.params.Currency
		summary = tuistyles.PanelStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			tuistyles.SubtitleStyle.Render("Projection"),
			fmt.Sprintf("Signed (cum):   %d", m.result.FinalSignedCum()),
			fmt.Sprintf("Total earnings: %s", output.FormatMoney(cur, m.result.TotalEarnings())),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", summary)
}

func (m Model) renderYearly() string {
	if m.result == nil {
		return tuistyles.InfoStyle.Render("No data")
	}
	cur := m.params.Currency

	var b strings.Builder
	fmt.Fprintf(&b, "%5s %18s %14s %16s %18s\n",
		"Year", "Client Payments", "New Sale", "Commission", "Total Earnings")
	for _, yt := range m.result.Yearly {
		fmt.Fprintf(&b, "%5d %18s %14s %16s %18s\n",
			yt.Year,
			output.FormatMoney(cur, yt.GrossClientPayments),
			output.FormatMoney(cur, yt.NewSaleIncome),
			output.FormatMoney(cur, yt.CommissionFromClients),
			output.FormatMoney(cur, yt.TotalEarnings))
	}
	return tuistyles.PanelStyle.Render(b.String())
}

func (m Model) renderTrend() string {
	if m.result == nil {
		return tuistyles.InfoStyle.Render("No data")
	}

	gross := make([]float64, len(m.result.Rows))
	commission := make([]float64, len(m.result.Rows))
	total := make([]float64, len(m.result.Rows))
	for i, r := range m.result.Rows {
		gross[i] = r.GrossClientPayments.InexactFloat64()
		commission[i] = r.CommissionFromClients.InexactFloat64()
		total[i] = r.TotalEarnings.InexactFloat64()
	}

	chart := components.NewASCIIChart("Earnings by Month")
	chart.Currency = m.params.Currency
	chart.AddSeries("Client Payments (Gross)", gross, tuistyles.ColorPrimary).
		AddSeries("Commission from Clients", commission, tuistyles.ColorSuccess).
		AddSeries("Total Monthly Earnings", total, tuistyles.ColorAccent)
	if m.width > 30 {
		chart.WithSize(m.width-4, 14)
	}
	return chart.Render()
}
