package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoehwa/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a form label.
type TextInput struct {
	Model   textinput.Model
	Label   string
	missing bool
}

// NewTextInput creates a blurred, labelled text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Label: label}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != "" {
		t.missing = false
	}
	return t, cmd
}

// View renders the label and input on one line.
func (t TextInput) View() string {
	label := theme.Label.Render(t.Label)
	if t.Focused() {
		label = theme.Label.Foreground(theme.Primary).Render(t.Label)
	}
	view := label + t.Model.View()
	if t.missing {
		view += " " + theme.WarningText.Render("필수")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// MarkMissing flags the input as a required field left empty.
func (t *TextInput) MarkMissing(missing bool) {
	t.missing = missing
}
