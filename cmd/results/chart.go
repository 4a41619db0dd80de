package results

import (
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

var (
	safeBarStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // green
	overstressedBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	axisStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("247"))
)

const (
	minChartWidth      = 44
	defaultChartHeight = 12
)

func barStyle(c tension.Condition) lipgloss.Style {
	if c == tension.Safe {
		return safeBarStyle
	}
	return overstressedBarStyle
}

// barHeight maps a tension to a drawable bar. Bars cannot hang below the
// axis and cannot be scaled when non-finite, so those draw flat; the legend
// still carries the real value.
func barHeight(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Chart draws the two tensions side by side. It returns "" when there is
// nothing above zero to plot.
func Chart(r tension.Report, width, height int) string {
	if width < minChartWidth {
		width = minChartWidth
	}
	if height <= 0 {
		height = defaultChartHeight
	}
	bare, buoyed := barHeight(r.Bare), barHeight(r.Buoyed)
	if bare == 0 && buoyed == 0 {
		return ""
	}
	data := []barchart.BarData{
		{
			Label:  WithoutBuoyancy,
			Values: []barchart.BarValue{{Name: WithoutBuoyancy, Value: bare, Style: barStyle(r.BareCondition)}},
		},
		{
			Label:  WithBuoyancy,
			Values: []barchart.BarValue{{Name: WithBuoyancy, Value: buoyed, Style: barStyle(r.BuoyedCondition)}},
		},
	}
	bc := barchart.New(width, height,
		barchart.WithDataSet(data),
		barchart.WithStyles(axisStyle, labelStyle),
	)
	bc.Draw()
	return bc.View()
}

// Legend lists each category with its colour swatch and humanized value.
func Legend(r tension.Report) string {
	b := &strings.Builder{}
	rows := []struct {
		name string
		v    float64
		c    tension.Condition
	}{
		{WithoutBuoyancy, r.Bare, r.BareCondition},
		{WithBuoyancy, r.Buoyed, r.BuoyedCondition},
	}
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(barStyle(row.c).Render("█"))
		b.WriteString(" ")
		b.WriteString(row.name)
		b.WriteString(": ")
		b.WriteString(legendValue(row.v))
	}
	return b.String()
}
