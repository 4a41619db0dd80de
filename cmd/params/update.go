package params

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Update forwards msg to the form. Submitting the last field starts the form
// over with the values kept, so the inputs stay editable.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m == nil {
		return nil
	}
	if m.form == nil {
		m.buildForm()
	}
	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted, huh.StateAborted:
		m.buildForm()
		return m.form.Init()
	}
	return cmd
}
