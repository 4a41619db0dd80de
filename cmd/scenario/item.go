package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	itemTitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	itemDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedTitleStyle = itemTitleStyle.Foreground(lipgloss.Color("51"))
	selectedDescStyle  = itemDescStyle.Foreground(lipgloss.Color("245"))
)

type scenarioItem struct{ Scenario }

func (i scenarioItem) Title() string { return i.Name }
func (i scenarioItem) Description() string {
	p := i.Params
	return fmt.Sprintf("%g N/m × %g m @ %g° | max %g N | %d bags × %g N/m",
		p.WeightPerLength, p.SuspendedLength, p.StingerAngle, p.MaxSafeTension, p.BagCount, p.BuoyancyReduction)
}
func (i scenarioItem) FilterValue() string { return strings.ToLower(i.Name) }

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 1 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(scenarioItem)
	if !ok {
		io.WriteString(w, "?")
		return
	}
	title := itemTitleStyle.Render(it.Title())
	desc := itemDescStyle.Render(it.Description())
	if index == m.Index() {
		title = selectedTitleStyle.Render("> " + it.Title())
		desc = selectedDescStyle.Render("  " + it.Description())
	}
	io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, title, desc))
}
