package components

import (
	"github.com/abhisek/hoehwa/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label    string
	Active   bool
	Disabled bool
}

// NewButton creates a new button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	switch {
	case b.Disabled:
		return theme.ButtonInactive.Foreground(theme.Border).Render(label)
	case b.Active:
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
