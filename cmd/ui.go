package cmd

import (
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/pipelay/cmd/params"
	"github.com/sumwatshade/pipelay/cmd/results"
	"github.com/sumwatshade/pipelay/cmd/scenario"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

type model struct {
	rightView string // tabResults or tabScenarios
	form      *params.Model
	scenarios *scenario.List
	report    *tension.Report
	width     int
	height    int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func initialModel(defaults tension.Params, scenarios []scenario.Scenario) model {
	m := model{
		rightView: tabResults,
		form:      params.NewModel(defaults),
		scenarios: scenario.NewList(scenarios),
		keys:      keys,
		help:      bhelp.New(),
	}
	m.recompute()
	return m
}

func (m model) Init() tea.Cmd {
	return m.form.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.form.SetWidth(leftPaneWidth(m.width) - 4)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Scenarios):
			if m.rightView == tabScenarios {
				m.rightView = tabResults
			} else {
				m.rightView = tabScenarios
			}
			return m, m.scenarios.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height}, rightPaneWidth(m.width), m.height)
		case key.Matches(msg, m.keys.Reset):
			cmd := m.form.Reset()
			m.recompute()
			return m, cmd
		}
		// keys go to whichever side has focus
		if m.rightView == tabScenarios {
			return m, m.scenarios.Update(msg, rightPaneWidth(m.width), m.height)
		}
		cmd := m.form.Update(msg)
		m.recompute()
		return m, cmd
	case scenario.SelectedMsg:
		logger.Info("scenario loaded", "name", msg.Scenario.Name)
		m.rightView = tabResults
		cmd := m.form.Load(msg.Scenario.Params)
		m.recompute()
		return m, cmd
	case scenario.ClosedMsg:
		m.rightView = tabResults
		return m, nil
	}

	// everything else (sizes, blink ticks) reaches both panes
	if cmd := m.form.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.scenarios.Update(msg, rightPaneWidth(m.width), m.height); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.recompute()
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// recompute evaluates the current inputs once per change. Invalid input keeps
// the previous report on screen.
func (m *model) recompute() {
	p, err := m.form.Params()
	if err != nil {
		return
	}
	if m.report != nil && m.report.Params == p {
		return
	}
	r := tension.Evaluate(p)
	m.report = &r
	logger.Debug("recomputed",
		"weight", p.WeightPerLength, "length", p.SuspendedLength, "angle", p.StingerAngle,
		"max", p.MaxSafeTension, "reduction", p.BuoyancyReduction, "bags", p.BagCount,
		"bare", r.Bare, "bare_condition", r.BareCondition,
		"buoyed", r.Buoyed, "buoyed_condition", r.BuoyedCondition)
}

func (m model) View() string {
	left := params.View(m.form)
	rightW := rightPaneWidth(m.width)
	var right string
	switch m.rightView {
	case tabResults:
		right = results.View(m.report, rightW-6)
	case tabScenarios:
		right = m.scenarios.View()
	default:
		right = "unknown"
	}

	leftW := leftPaneWidth(m.width)
	leftRendered := lipgloss.NewStyle().Width(leftW).Render(contentStyle.Render(left))
	rightRendered := lipgloss.NewStyle().Width(rightW).Render(contentStyle.Render(right))
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, dividerStyle.Render("│"), rightRendered)

	header := headerStyle.Render(appTitle) + " " + tabs(m.rightView, max(0, m.width-10))
	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))
	foot := m.help.View(m.keys)
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, columns, sep, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

// left pane: 40% with a floor wide enough for the form labels
func leftPaneWidth(total int) int {
	return max(36, int(float64(total)*0.4))
}

func rightPaneWidth(total int) int {
	return max(50, total-leftPaneWidth(total)-1)
}
