package params

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/sumwatshade/pipelay/pkg/tension"
)

// Model wraps the huh form collecting the six calculator inputs. The form is
// rebuilt after completion so editing never ends.
type Model struct {
	fields   Fields
	defaults tension.Params
	form     *huh.Form
	width    int
}

func NewModel(defaults tension.Params) *Model {
	m := &Model{defaults: defaults, fields: FieldsFrom(defaults)}
	m.buildForm()
	return m
}

func (m *Model) buildForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(LabelWeight).Value(&m.fields.Weight).Validate(validator(LabelWeight, parseNonNegative)),
			huh.NewInput().Title(LabelLength).Value(&m.fields.Length).Validate(validator(LabelLength, parseNonNegative)),
			huh.NewInput().Title(LabelAngle).Description("0 to 90").Value(&m.fields.Angle).Validate(validator(LabelAngle, parseAngle)),
			huh.NewInput().Title(LabelMaxSafe).Value(&m.fields.MaxSafe).Validate(validator(LabelMaxSafe, parseNonNegative)),
		).Title("Parameters"),
		huh.NewGroup(
			huh.NewInput().Title(LabelReduction).Value(&m.fields.Reduction).Validate(validator(LabelReduction, parseNonNegative)),
			huh.NewInput().Title(LabelBags).Value(&m.fields.Bags).Validate(validator(LabelBags, parseCount)),
		).Title("Buoyancy Bag"),
	).WithShowHelp(false)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
}

// Init focuses the first field.
func (m *Model) Init() tea.Cmd {
	if m == nil || m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Params parses the fields as currently typed.
func (m *Model) Params() (tension.Params, error) {
	return Parse(m.fields)
}

// Fields returns the raw field text.
func (m *Model) Fields() Fields { return m.fields }

// Load replaces every field with p and restarts the form.
func (m *Model) Load(p tension.Params) tea.Cmd {
	m.fields = FieldsFrom(p)
	m.buildForm()
	return m.form.Init()
}

// Reset restores the configured defaults.
func (m *Model) Reset() tea.Cmd {
	return m.Load(m.defaults)
}

// SetWidth constrains the rendered form.
func (m *Model) SetWidth(w int) {
	if w <= 0 || w == m.width {
		return
	}
	m.width = w
	if m.form != nil {
		m.form = m.form.WithWidth(w)
	}
}
