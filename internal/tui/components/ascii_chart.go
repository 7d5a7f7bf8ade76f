package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bajramiymer-oss/earncalc/internal/tui/tuistyles"
)

// DataSeries is a single line in a chart.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart renders line series as a character grid with a Y axis.
type ASCIIChart struct {
	Title    string
	Series   []*DataSeries
	Width    int
	Height   int
	Currency string // Y-axis value prefix, display label only
}

// NewASCIIChart creates a chart with default dimensions.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:  title,
		Width:  64,
		Height: 12,
	}
}

// AddSeries appends a line to the chart.
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithSize sets the chart dimensions.
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	if width > 20 {
		c.Width = width
	}
	if height > 4 {
		c.Height = height
	}
	return c
}

// Render returns the styled chart.
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(tuistyles.TitleStyle.Render(c.Title))
		out.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	out.WriteString(c.renderGrid(minVal, maxVal))
	out.WriteString("\n")
	out.WriteString(c.renderLegend())
	return out.String()
}

func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if lo == hi {
		// flat series still needs a non-zero range to map onto rows
		hi = lo + 1
	}
	pad := (hi - lo) * 0.1
	return lo - pad, hi + pad
}

var seriesChars = []rune{'●', '■', '▲', '♦'}

func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 12
	plotWidth := c.Width - yAxisWidth
	if plotWidth < 10 {
		plotWidth = 10
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, plotWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for si, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		ch := seriesChars[si%len(seriesChars)]
		prevX, prevY := -1, -1
		for i, p := range s.Points {
			x := 0
			if len(s.Points) > 1 {
				x = int(float64(i) / float64(len(s.Points)-1) * float64(plotWidth-1))
			}
			y := c.Height - 1 - int((p-minVal)/(maxVal-minVal)*float64(c.Height-1))
			if x >= 0 && x < plotWidth && y >= 0 && y < c.Height {
				grid[y][x] = ch
			}
			if prevX >= 0 {
				drawLine(grid, prevX, prevY, x, y, ch)
			}
			prevX, prevY = x, y
		}
	}

	axisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	var out strings.Builder
	span := maxVal - minVal
	for i, row := range grid {
		yVal := maxVal - (float64(i)/float64(c.Height-1))*span
		out.WriteString(axisStyle.Render(c.formatValue(yVal)))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", plotWidth))
	return out.String()
}

// drawLine connects two grid points with Bresenham's algorithm, filling
// only blank cells so plotted points stay visible.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, ch rune) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] == ' ' {
			grid[y][x] = ch
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *ASCIIChart) renderLegend() string {
	var items []string
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChars[i%len(seriesChars)]))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(s.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}
	return tuistyles.SubtitleStyle.Render(strings.Join(items, "  "))
}

func (c *ASCIIChart) formatValue(v float64) string {
	switch {
	case math.Abs(v) >= 1000000:
		return fmt.Sprintf("%s%.1fM", c.Currency, v/1000000)
	case math.Abs(v) >= 1000:
		return fmt.Sprintf("%s%.0fK", c.Currency, v/1000)
	default:
		return fmt.Sprintf("%s%.0f", c.Currency, v)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
