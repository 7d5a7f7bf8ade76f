package tuistyles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary    = lipgloss.Color("39")  // blue
	ColorAccent     = lipgloss.Color("213") // pink
	ColorSuccess    = lipgloss.Color("42")  // green
	ColorWarning    = lipgloss.Color("214") // orange
	ColorError      = lipgloss.Color("196") // red
	ColorInfo       = lipgloss.Color("86")  // cyan
	ColorMuted      = lipgloss.Color("241") // gray
	ColorForeground = lipgloss.Color("252") // light gray
)

// Shared styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)
)
