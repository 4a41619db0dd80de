package params

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	paramsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	faint            = lipgloss.NewStyle().Faint(true)
)

// View renders the form and, when a field is invalid, the reason.
func View(m *Model) string {
	if m == nil || m.form == nil {
		return paramsTitleStyle.Render("Inputs") + "\n" + faint.Render("(initializing)")
	}
	b := &strings.Builder{}
	fmt.Fprintln(b, paramsTitleStyle.Render("Inputs"))
	fmt.Fprintln(b, m.form.View())
	if _, err := m.Params(); err != nil {
		fmt.Fprintln(b, errStyle.Render(err.Error()))
	}
	fmt.Fprint(b, faint.Render("enter next field · shift+tab back"))
	return b.String()
}
