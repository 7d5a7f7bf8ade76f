package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/bajramiymer-oss/earncalc/internal/calculation"
	"github.com/bajramiymer-oss/earncalc/internal/domain"
	"github.com/bajramiymer-oss/earncalc/internal/output"
	"github.com/bajramiymer-oss/earncalc/internal/tui/components"
	"github.com/bajramiymer-oss/earncalc/internal/tui/tuistyles"
)

// exportFilename keeps the historical workbook name so downstream
// consumers of prior exports keep working.
const exportFilename = "Payments_v3_3.xlsx"

// Model is the interactive form: it holds the working parameter set, the
// projection recomputed after every adjustment, and the widgets that
// render both.
type Model struct {
	currentView View

	width  int
	height int

	params *domain.ParameterSet
	engine *calculation.ProjectionEngine
	result *domain.ProjectionResult

	fields  []*formField
	focused int

	monthlyTable table.Model

	status string
	err    error
}

// formField is one row of the parameter form. Exactly one of slider or
// selector is set; apply writes the widget's value back into the
// parameter set.
type formField struct {
	slider   *components.ParameterSlider
	selector *components.OptionSelector
	apply    func(m *Model)
	// relevant hides fields that do not apply under the current modes,
	// e.g. churn percent while in fixed mode.
	relevant func(p *domain.ParameterSet) bool
}

func (f *formField) setFocused(focused bool) {
	if f.slider != nil {
		f.slider.IsFocused = focused
	}
	if f.selector != nil {
		f.selector.IsFocused = focused
	}
}

func (f *formField) render() string {
	if f.slider != nil {
		return f.slider.RenderCompact()
	}
	return f.selector.RenderCompact()
}

// NewModel creates the application model seeded with the given parameters.
func NewModel(params *domain.ParameterSet) Model {
	m := Model{
		currentView: ViewParameters,
		params:      params,
		engine:      calculation.NewProjectionEngine(),
		width:       100,
		height:      30,
	}
	m.fields = buildFields(params)
	m.fields[0].setFocused(true)
	m.monthlyTable = newMonthlyTable()
	m.recompute()
	return m
}

// Init is required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// recompute reruns the projection for the current parameters and refreshes
// the dependent widgets. Projection of a bounded horizon is cheap enough to
// run synchronously on every keystroke.
func (m *Model) recompute() {
	result, err := m.engine.Run(m.params)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.result = result
	m.monthlyTable.SetRows(monthlyRows(result))
}

func newMonthlyTable() table.Model {
	columns := []table.Column{
		{Title: "Month", Width: 5},
		{Title: "New", Width: 5},
		{Title: "Cancel", Width: 6},
		{Title: "Mode", Width: 6},
		{Title: "Net", Width: 5},
		{Title: "Signed", Width: 7},
		{Title: "Paying", Width: 9},
		{Title: "Gross", Width: 12},
		{Title: "New Sale", Width: 11},
		{Title: "Commission", Width: 12},
		{Title: "Total", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(16),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(tuistyles.ColorPrimary).
		BorderForeground(tuistyles.ColorMuted)
	styles.Selected = styles.Selected.
		Foreground(tuistyles.ColorAccent).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func monthlyRows(result *domain.ProjectionResult) []table.Row {
	rows := make([]table.Row, 0, len(result.Rows))
	cur := result.Parameters.Currency
	for _, r := range result.Rows {
		cancel := "-"
		if r.Mode == domain.CancellationFixed {
			cancel = strconv.Itoa(r.Cancellations)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(r.Month),
			strconv.Itoa(r.NewClients),
			cancel,
			r.Mode.Label(),
			strconv.Itoa(r.NetActivations),
			strconv.Itoa(r.SignedCum),
			r.PayingClients.StringFixed(2),
			output.FormatMoney(cur, r.GrossClientPayments),
			output.FormatMoney(cur, r.NewSaleIncome),
			output.FormatMoney(cur, r.CommissionFromClients),
			output.FormatMoney(cur, r.TotalEarnings),
		})
	}
	return rows
}

// exportCmd writes the workbook off the update loop.
func exportCmd(result *domain.ProjectionResult) tea.Cmd {
	return func() tea.Msg {
		exporter := output.NewExcelExporter()
		err := exporter.WriteFile(result, exportFilename)
		return ExportDoneMsg{Path: exportFilename, Err: err}
	}
}

// visibleFields returns indexes of the fields applicable under the current
// modes, in form order.
func (m *Model) visibleFields() []int {
	idx := make([]int, 0, len(m.fields))
	for i, f := range m.fields {
		if f.relevant == nil || f.relevant(m.params) {
			idx = append(idx, i)
		}
	}
	return idx
}

func buildFields(p *domain.ParameterSet) []*formField {
	onOff := func(enabled bool) string {
		if enabled {
			return "On"
		}
		return "Off"
	}

	monthsSlider := components.NewParameterSlider("Months to project", float64(p.Months), 12, 60, 12)
	newClients := components.NewParameterSlider("New Clients per Month", float64(p.NewClientsPerMonth), 0, 100, 1)

	overrideToggle := components.NewOptionSelector("Override a specific month", []string{"Off", "On"})
	overrideToggle.Select(onOff(p.Override.Enabled))
	overrideMonth := components.NewParameterSlider("Month to override", float64(max(p.Override.Month, 1)), 1, 60, 1)
	overrideClients := components.NewParameterSlider("New Clients for that month", float64(p.Override.NewClients), 0, 100, 1)

	cancelMode := components.NewOptionSelector("Cancellations mode", []string{
		domain.CancellationFixed.Label(), domain.CancellationChurn.Label(),
	})
	cancelMode.Select(p.CancellationMode.Label())
	fixedCancels := components.NewParameterSlider("Cancellations per Month", float64(p.FixedCancellations), 0, 20, 1)
	churnPercent := components.NewParameterSlider("Churn % per active month", p.ChurnPercent.InexactFloat64(), 0, 50, 1).WithUnit("%")

	lifetimeMonths := components.NewParameterSlider("Client lifetime (months)", float64(p.LifetimeMonths), 0, 60, 1)
	lifetimeMode := components.NewOptionSelector("Lifetime counting mode", []string{
		domain.LifetimeFromActivation.Label(), domain.LifetimeAfterFreeMonths.Label(),
	})
	lifetimeMode.Select(p.LifetimeMode.Label())

	contractType := components.NewOptionSelector("Contract type", []string{
		domain.ContractIntroRecurring.Label(), domain.ContractFlat.Label(),
	})
	contractType.Select(p.Contract.Type.Label())
	freeMonths := components.NewParameterSlider("Free Months at start", float64(p.Contract.FreeMonths), 0, 24, 1)
	introMonths := components.NewParameterSlider("Intro Months", float64(p.Contract.IntroMonths), 1, 24, 1)
	introAmount := components.NewParameterSlider("Intro Monthly Amount", p.Contract.IntroAmount.InexactFloat64(), 0, 1000, 10).WithUnit(p.Currency)
	recurringAmount := components.NewParameterSlider("Recurring Monthly Amount", p.Contract.RecurringAmount.InexactFloat64(), 0, 1000, 10).WithUnit(p.Currency)
	flatAmount := components.NewParameterSlider("Flat Monthly Amount", p.Contract.FlatAmount.InexactFloat64(), 0, 1000, 10).WithUnit(p.Currency)

	commission := components.NewParameterSlider("Commission Rate", p.CommissionPercent.InexactFloat64(), 0, 100, 5).WithUnit("%")
	payoutPolicy := components.NewOptionSelector("Payout policy", []string{
		domain.PayoutBonusOnly.Label(), domain.PayoutBonusRecurring.Label(), domain.PayoutRecurringOnly.Label(),
	})
	payoutPolicy.Select(p.PayoutPolicy.Label())
	payoutType := components.NewOptionSelector("Payout type", []string{
		domain.PayoutCommissionable.Label(), domain.PayoutFlat.Label(),
	})
	payoutType.Select(p.PayoutType.Label())

	bonusToggle := components.NewOptionSelector("Use New Sale Payout", []string{"Off", "On"})
	bonusToggle.Select(onOff(p.Bonus.Enabled))
	bonusAmount := components.NewParameterSlider("New Sale Payout per Client", p.Bonus.AmountPerClient.InexactFloat64(), 0, 1000, 10).WithUnit(p.Currency)
	bonusDuration := components.NewParameterSlider("Payout duration (months)", float64(p.Bonus.DurationMonths), 0, 24, 1)

	isFixed := func(p *domain.ParameterSet) bool { return p.CancellationMode == domain.CancellationFixed }
	isChurn := func(p *domain.ParameterSet) bool { return p.CancellationMode == domain.CancellationChurn }
	isIntro := func(p *domain.ParameterSet) bool { return p.Contract.Type == domain.ContractIntroRecurring }
	isFlat := func(p *domain.ParameterSet) bool { return p.Contract.Type == domain.ContractFlat }
	overrideOn := func(p *domain.ParameterSet) bool { return p.Override.Enabled }
	bonusOn := func(p *domain.ParameterSet) bool { return p.Bonus.Enabled }

	return []*formField{
		{slider: monthsSlider, apply: func(m *Model) { m.params.Months = int(monthsSlider.Value) }},
		{slider: newClients, apply: func(m *Model) { m.params.NewClientsPerMonth = int(newClients.Value) }},

		{selector: overrideToggle, apply: func(m *Model) {
			m.params.Override.Enabled = overrideToggle.Value() == "On"
			if m.params.Override.Enabled && m.params.Override.Month == 0 {
				m.params.Override.Month = int(overrideMonth.Value)
				m.params.Override.NewClients = int(overrideClients.Value)
			}
		}},
		{slider: overrideMonth, relevant: overrideOn, apply: func(m *Model) {
			if int(overrideMonth.Value) > m.params.Months {
				overrideMonth.SetValue(float64(m.params.Months))
			}
			m.params.Override.Month = int(overrideMonth.Value)
		}},
		{slider: overrideClients, relevant: overrideOn, apply: func(m *Model) {
			m.params.Override.NewClients = int(overrideClients.Value)
		}},

		{selector: cancelMode, apply: func(m *Model) {
			if cancelMode.Value() == domain.CancellationChurn.Label() {
				m.params.CancellationMode = domain.CancellationChurn
			} else {
				m.params.CancellationMode = domain.CancellationFixed
			}
		}},
		{slider: fixedCancels, relevant: isFixed, apply: func(m *Model) {
			m.params.FixedCancellations = int(fixedCancels.Value)
		}},
		{slider: churnPercent, relevant: isChurn, apply: func(m *Model) {
			m.params.ChurnPercent = decimal.NewFromFloat(churnPercent.Value)
		}},

		{slider: lifetimeMonths, apply: func(m *Model) { m.params.LifetimeMonths = int(lifetimeMonths.Value) }},
		{selector: lifetimeMode, apply: func(m *Model) {
			if lifetimeMode.Value() == domain.LifetimeAfterFreeMonths.Label() {
				m.params.LifetimeMode = domain.LifetimeAfterFreeMonths
			} else {
				m.params.LifetimeMode = domain.LifetimeFromActivation
			}
		}},

		{selector: contractType, apply: func(m *Model) {
			if contractType.Value() == domain.ContractFlat.Label() {
				m.params.Contract.Type = domain.ContractFlat
			} else {
				m.params.Contract.Type = domain.ContractIntroRecurring
			}
		}},
		{slider: freeMonths, apply: func(m *Model) { m.params.Contract.FreeMonths = int(freeMonths.Value) }},
		{slider: introMonths, relevant: isIntro, apply: func(m *Model) {
			m.params.Contract.IntroMonths = int(introMonths.Value)
		}},
		{slider: introAmount, relevant: isIntro, apply: func(m *Model) {
			m.params.Contract.IntroAmount = decimal.NewFromFloat(introAmount.Value)
		}},
		{slider: recurringAmount, relevant: isIntro, apply: func(m *Model) {
			m.params.Contract.RecurringAmount = decimal.NewFromFloat(recurringAmount.Value)
		}},
		{slider: flatAmount, relevant: isFlat, apply: func(m *Model) {
			m.params.Contract.FlatAmount = decimal.NewFromFloat(flatAmount.Value)
		}},

		{slider: commission, apply: func(m *Model) {
			m.params.CommissionPercent = decimal.NewFromFloat(commission.Value)
		}},
		{selector: payoutPolicy, apply: func(m *Model) {
			switch payoutPolicy.Value() {
			case domain.PayoutBonusOnly.Label():
				m.params.PayoutPolicy = domain.PayoutBonusOnly
			case domain.PayoutRecurringOnly.Label():
				m.params.PayoutPolicy = domain.PayoutRecurringOnly
			default:
				m.params.PayoutPolicy = domain.PayoutBonusRecurring
			}
		}},
		{selector: payoutType, apply: func(m *Model) {
			if payoutType.Value() == domain.PayoutFlat.Label() {
				m.params.PayoutType = domain.PayoutFlat
			} else {
				m.params.PayoutType = domain.PayoutCommissionable
			}
		}},

		{selector: bonusToggle, apply: func(m *Model) {
			m.params.Bonus.Enabled = bonusToggle.Value() == "On"
		}},
		{slider: bonusAmount, relevant: bonusOn, apply: func(m *Model) {
			m.params.Bonus.AmountPerClient = decimal.NewFromFloat(bonusAmount.Value)
		}},
		{slider: bonusDuration, relevant: bonusOn, apply: func(m *Model) {
			m.params.Bonus.DurationMonths = int(bonusDuration.Value)
		}},
	}
}

