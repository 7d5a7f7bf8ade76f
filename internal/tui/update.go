package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Height > 10 {
			m.monthlyTable.SetHeight(msg.Height - 8)
		}
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.Err)
		} else {
			m.status = fmt.Sprintf("exported %s", msg.Path)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.currentView = (m.currentView + 1) % 4
		return m, nil

	case "shift+tab":
		m.currentView = (m.currentView + 3) % 4
		return m, nil

	case "e":
		if m.result != nil {
			m.status = "exporting..."
			return m, exportCmd(m.result)
		}
		return m, nil
	}

	switch m.currentView {
	case ViewParameters:
		return m.handleFormKey(msg)
	case ViewMonthly:
		var cmd tea.Cmd
		m.monthlyTable, cmd = m.monthlyTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleFields()
	if len(visible) == 0 {
		return m, nil
	}

	// Focus tracks a position within the visible fields; mode switches can
	// shrink the list, so keep it in bounds first.
	if m.focused >= len(visible) {
		m.focused = len(visible) - 1
	}
	current := m.fields[visible[m.focused]]

	switch msg.String() {
	case "up", "k":
		current.setFocused(false)
		m.focused--
		if m.focused < 0 {
			m.focused = len(visible) - 1
		}
	case "down", "j":
		current.setFocused(false)
		m.focused++
		if m.focused >= len(visible) {
			m.focused = 0
		}
	case "left", "h":
		if current.slider != nil {
			current.slider.Decrement()
		} else {
			current.selector.Prev()
		}
		current.apply(&m)
		m.recompute()
	case "right", "l":
		if current.slider != nil {
			current.slider.Increment()
		} else {
			current.selector.Next()
		}
		current.apply(&m)
		m.recompute()
	}

	visible = m.visibleFields()
	if m.focused >= len(visible) {
		m.focused = len(visible) - 1
	}
	m.fields[visible[m.focused]].setFocused(true)

	return m, nil
}
