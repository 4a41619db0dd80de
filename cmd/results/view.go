package results

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

var (
	resultsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	chartTitleStyle   = lipgloss.NewStyle().Bold(true)
	infoStyle         = lipgloss.NewStyle().Faint(true)
	safeLineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	overLineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func lineStyle(c tension.Condition) lipgloss.Style {
	if c == tension.Safe {
		return safeLineStyle
	}
	return overLineStyle
}

// View renders the result lines and the comparison chart for r.
func View(r *tension.Report, width int) string {
	b := &strings.Builder{}
	b.WriteString(resultsTitleStyle.Render("Simulation Results"))
	b.WriteString("\n")
	if r == nil {
		b.WriteString(infoStyle.Render("No results yet"))
		return b.String()
	}
	b.WriteString(lineStyle(r.BareCondition).Render(Line(false, r.Bare, r.BareCondition)))
	b.WriteString("\n")
	b.WriteString(lineStyle(r.BuoyedCondition).Render(Line(true, r.Buoyed, r.BuoyedCondition)))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("Effective weight with bags: " + FormatTension(r.EffectiveWeight) + " N/m"))
	b.WriteString("\n\n")

	b.WriteString(chartTitleStyle.Render("Pipe Tension Comparison"))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("Tension (N) by condition"))
	b.WriteString("\n")
	if chart := Chart(*r, width, defaultChartHeight); chart != "" {
		b.WriteString(chart)
	} else {
		b.WriteString(infoStyle.Render("Nothing to plot: neither tension is positive"))
	}
	b.WriteString("\n")
	b.WriteString(Legend(*r))
	return b.String()
}

// Plain renders r without styling, for non-interactive output.
func Plain(r tension.Report, width int, chart bool) string {
	b := &strings.Builder{}
	b.WriteString(strings.Join(Lines(r), "\n"))
	b.WriteString("\n")
	if !chart {
		return b.String()
	}
	b.WriteString("\nPipe Tension Comparison\n")
	if c := Chart(r, width, defaultChartHeight); c != "" {
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString(Legend(r))
	b.WriteString("\n")
	return b.String()
}
