package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/pescados"
)

// Colours of the invested and sold series, and of positive and negative results.
var (
	investedColor = lipgloss.Color("#FF8042")
	soldColor     = lipgloss.Color("#0088FE")
	gainColor     = lipgloss.Color("#00C49F")
	lossColor     = lipgloss.Color("#f38ba8")
	mutedColor    = lipgloss.Color("#7f849c")
)

const block = "█"

// DefaultChartWidth is the width of the longest bar.
const DefaultChartWidth = 40

// bar returns a coloured bar proportional to v/top.
func bar(v, top float64, width int, color lipgloss.Color) string {
	n := 0
	if top > 0 {
		n = int(math.Round(math.Abs(v) / top * float64(width)))
	}
	if n == 0 && v != 0 {
		n = 1
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(block, n))
}

func muted(s string) string { return lipgloss.NewStyle().Foreground(mutedColor).Render(s) }

// labelWidth returns the display width of the widest label.
func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

// BarChart draws, for every product, its invested and sold amounts side by side.
func BarChart(bars []pescados.Bar, width int) string {
	if len(bars) == 0 {
		return muted("Nenhuma movimentação no período.")
	}
	var top float64
	labels := make([]string, len(bars))
	for i, b := range bars {
		top = max(top, b.Invested.InexactFloat64(), b.Sold.InexactFloat64())
		labels[i] = b.Label
	}
	pad := lipgloss.NewStyle().Width(labelWidth(labels) + 1)

	lines := []string{
		lipgloss.NewStyle().Foreground(investedColor).Render(block+" Investido") + "  " +
			lipgloss.NewStyle().Foreground(soldColor).Render(block+" Vendido"),
		"",
	}
	for _, b := range bars {
		lines = append(lines,
			pad.Render(b.Label)+bar(b.Invested.InexactFloat64(), top, width, investedColor)+" "+b.Invested.String(),
			pad.Render("")+bar(b.Sold.InexactFloat64(), top, width, soldColor)+" "+b.Sold.String(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// LineChart draws the cumulative result, one line per day, gains to the right in green
// and losses in red.
func LineChart(points []pescados.Point, width int) string {
	if len(points) == 0 {
		return muted("Nenhuma movimentação no período.")
	}
	var top float64
	labels := make([]string, len(points))
	for i, p := range points {
		top = max(top, math.Abs(p.Value.InexactFloat64()))
		labels[i] = p.Label
	}
	pad := lipgloss.NewStyle().Width(labelWidth(labels) + 1)

	lines := make([]string, 0, len(points))
	for _, p := range points {
		color := gainColor
		if p.Value.IsNegative() {
			color = lossColor
		}
		lines = append(lines, pad.Render(p.Label)+"│"+bar(p.Value.InexactFloat64(), top, width, color)+" "+p.Value.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// PieChart draws the sales share of each product as one stacked bar, followed by its legend.
func PieChart(pie []pescados.Slice, width int) string {
	if len(pie) == 0 {
		return muted("Nenhuma venda no período.")
	}
	var total float64
	labels := make([]string, len(pie))
	for i, s := range pie {
		total += s.Value.InexactFloat64()
		labels[i] = s.Name
	}

	var stack strings.Builder
	legend := make([]string, 0, len(pie))
	pad := lipgloss.NewStyle().Width(labelWidth(labels) + 1)
	for _, s := range pie {
		share := s.Value.InexactFloat64() / total
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
		stack.WriteString(style.Render(strings.Repeat(block, int(math.Round(share*float64(width))))))
		legend = append(legend, style.Render(block)+" "+pad.Render(s.Name)+fmt.Sprintf("%s (%.1f%%)", s.Value, share*100))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{stack.String(), ""}, legend...)...)
}
