package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/jask/packrat/internal/validate"
)

const (
	fieldName = iota
	fieldDescription
	fieldWeight
	fieldCount
)

var (
	formTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	formLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	formErrorStyle = lipgloss.NewStyle().Foreground(colorError)
)

// itemForm gathers the fields for a new piece of gear. Values are validated
// on submit; a failed submit keeps everything typed so the user can correct
// it in place.
type itemForm struct {
	inputs []textinput.Model
	focus  int
	errMsg string
	log    *logrus.Entry
}

func newItemForm(log *logrus.Entry) *itemForm {
	inputs := make([]textinput.Model, fieldCount)

	name := textinput.New()
	name.Placeholder = "Tent"
	name.CharLimit = 64
	name.Width = 32
	inputs[fieldName] = name

	desc := textinput.New()
	desc.Placeholder = "Two-person tent"
	desc.CharLimit = 128
	desc.Width = 32
	inputs[fieldDescription] = desc

	weight := textinput.New()
	weight.Placeholder = "1200"
	weight.CharLimit = 8
	weight.Width = 32
	inputs[fieldWeight] = weight

	f := &itemForm{inputs: inputs, log: log}
	f.inputs[fieldName].Focus()
	return f
}

// reset clears every field and puts focus back on the name.
func (f *itemForm) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = fieldName
	f.errMsg = ""
	return f.inputs[fieldName].Focus()
}

func (f *itemForm) focusNext() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f *itemForm) focusPrev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *itemForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Update forwards msg to the focused field.
func (f *itemForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// submit validates the fields. On success it returns the parsed values; on
// failure it records the first violation and leaves the typed values
// untouched. Fields are cleared by reset on the next open, not here.
func (f *itemForm) submit() (name, description string, grams float64, ok bool) {
	name = strings.TrimSpace(f.inputs[fieldName].Value())
	description = strings.TrimSpace(f.inputs[fieldDescription].Value())
	rawWeight := strings.TrimSpace(f.inputs[fieldWeight].Value())

	err := validate.Check([]validate.Rule{
		{Label: "name", Value: name, Required: true},
		{Label: "description", Value: description, Required: true, MinRunes: 5},
		{Label: "weight", Value: rawWeight, Required: true, Numeric: true, Min: validate.Float(1), Max: validate.Float(1000)},
	})
	if err != nil {
		f.errMsg = err.Error()
		f.log.WithField("reason", err.Error()).Debug("form rejected")
		return "", "", 0, false
	}

	grams, parseErr := strconv.ParseFloat(rawWeight, 64)
	if parseErr != nil {
		f.errMsg = "weight must be a number"
		return "", "", 0, false
	}

	f.errMsg = ""
	return name, description, grams, true
}

// View renders the stacked fields with the current error, if any.
func (f *itemForm) View() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("Add gear"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Name", "Description", "Weight (grams)"}
	for i, input := range f.inputs {
		b.WriteString(formLabelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(formErrorStyle.Render(f.errMsg))
	}
	return b.String()
}
