package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/bajramiymer-oss/earncalc/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable numeric parameter with a visual
// slider bar.
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // e.g. "%", "mo", "£"
	Format    string // e.g. "%.2f", "%.0f"
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a new parameter slider.
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  20,
	}
}

// WithUnit sets the unit suffix.
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string.
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// Increment increases the value by one step, clamped to Max.
func (p *ParameterSlider) Increment() {
	if v := p.Value + p.Step; v <= p.Max {
		p.Value = v
	}
}

// Decrement decreases the value by one step, clamped to Min.
func (p *ParameterSlider) Decrement() {
	if v := p.Value - p.Step; v >= p.Min {
		p.Value = v
	}
}

// SetValue sets the value directly, clamping to the range.
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value's position in the range as [0, 1].
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// RenderCompact returns a single-line rendering: label, value, mini slider.
func (p *ParameterSlider) RenderCompact() string {
	valueStr := fmt.Sprintf(p.Format, p.Value)
	if p.Unit != "" {
		valueStr += p.Unit
	}

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	label := labelStyle.Width(28).Render(p.Label)
	value := valueStyle.Width(10).Render(valueStr)

	return fmt.Sprintf("%s %s %s", label, value, p.renderBar())
}

func (p *ParameterSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}

	thumbStyle := tuistyles.SliderThumbStyle
	trackStyle := tuistyles.SliderTrackStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == filled || (filled == p.Width && i == p.Width-1):
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(trackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
