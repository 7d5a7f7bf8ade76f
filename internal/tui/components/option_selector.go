package components

import (
	"fmt"

	"github.com/bajramiymer-oss/earncalc/internal/tui/tuistyles"
)

// OptionSelector displays a parameter that cycles through a fixed set of
// choices, the radio buttons of the form.
type OptionSelector struct {
	Label     string
	Options   []string
	Selected  int
	IsFocused bool
}

// NewOptionSelector creates a selector over the given options.
func NewOptionSelector(label string, options []string) *OptionSelector {
	return &OptionSelector{Label: label, Options: options}
}

// Next advances to the following option, wrapping around.
func (o *OptionSelector) Next() {
	if len(o.Options) == 0 {
		return
	}
	o.Selected = (o.Selected + 1) % len(o.Options)
}

// Prev moves to the preceding option, wrapping around.
func (o *OptionSelector) Prev() {
	if len(o.Options) == 0 {
		return
	}
	o.Selected = (o.Selected + len(o.Options) - 1) % len(o.Options)
}

// Value returns the currently selected option, or "" when empty.
func (o *OptionSelector) Value() string {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected]
}

// Select sets the selection to the option equal to value, if present.
func (o *OptionSelector) Select(value string) {
	for i, opt := range o.Options {
		if opt == value {
			o.Selected = i
			return
		}
	}
}

// RenderCompact returns a single-line rendering: label and choice with
// cycle arrows.
func (o *OptionSelector) RenderCompact() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if o.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	label := labelStyle.Width(28).Render(o.Label)
	value := valueStyle.Render(fmt.Sprintf("◂ %s ▸", o.Value()))
	return fmt.Sprintf("%s %s", label, value)
}
