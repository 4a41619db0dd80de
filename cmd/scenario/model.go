package scenario

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	listTitleBarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	faintStyle        = lipgloss.NewStyle().Faint(true)
)

// SelectedMsg is emitted when the user picks a preset.
type SelectedMsg struct {
	Scenario Scenario
}

// ClosedMsg is emitted when the user leaves the list without picking.
type ClosedMsg struct{}

// List is the interactive preset picker.
type List struct {
	Scenarios []Scenario
	list      list.Model
	ready     bool
	width     int
	height    int
}

func NewList(scenarios []Scenario) *List {
	return &List{Scenarios: scenarios}
}

// ensureList creates or resizes the list model based on dimensions.
func (l *List) ensureList(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	l.width = width
	l.height = height
	listHeight := max(5, height-6)
	if !l.ready {
		items := make([]list.Item, 0, len(l.Scenarios))
		for _, sc := range l.Scenarios {
			items = append(items, scenarioItem{sc})
		}
		m := list.New(items, itemDelegate{}, max(10, width-4), listHeight)
		m.Title = "Scenarios"
		m.SetShowStatusBar(true)
		m.SetShowPagination(true)
		m.SetFilteringEnabled(true)
		m.SetShowHelp(false)
		m.Styles.Title = listTitleBarStyle
		m.Styles.StatusBar = statusBarStyle
		m.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		l.list = m
		l.ready = true
		return
	}
	l.list.SetSize(max(10, width-4), listHeight)
}

// Update handles list navigation. enter picks the highlighted preset; esc
// clears an active filter first and closes the list otherwise.
func (l *List) Update(msg tea.Msg, width, height int) tea.Cmd {
	l.ensureList(width, height)
	if !l.ready {
		return nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && l.list.FilterState() != list.Filtering {
		switch km.String() {
		case "esc":
			if l.list.FilterState() == list.FilterApplied {
				l.list.ResetFilter()
				return nil
			}
			return func() tea.Msg { return ClosedMsg{} }
		case "enter":
			sel, ok := l.list.SelectedItem().(scenarioItem)
			if !ok {
				return nil
			}
			return func() tea.Msg { return SelectedMsg{Scenario: sel.Scenario} }
		}
	}
	var cmd tea.Cmd
	l.list, cmd = l.list.Update(msg)
	return cmd
}

// View renders the picker.
func (l *List) View() string {
	if len(l.Scenarios) == 0 {
		return listTitleBarStyle.Render("Scenarios") + "\n" +
			faintStyle.Render("No scenarios configured. Add a 'scenarios' list to $HOME/.pipelay.yaml.")
	}
	if !l.ready {
		return listTitleBarStyle.Render("Scenarios") + "\n" + "Loading..."
	}
	return l.list.View()
}
