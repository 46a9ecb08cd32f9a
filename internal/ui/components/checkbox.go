package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoehwa/internal/ui/theme"
)

// Checkbox is a boolean toggle switched with space.
type Checkbox struct {
	Label    string
	Checked  bool
	Active   bool
	Disabled bool
}

// Update toggles on space while active.
func (c Checkbox) Update(msg tea.Msg) (Checkbox, tea.Cmd) {
	if !c.Active || c.Disabled {
		return c, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "space" {
		c.Checked = !c.Checked
	}
	return c, nil
}

// View renders the checkbox.
func (c Checkbox) View() string {
	box := "[ ] "
	if c.Checked {
		box = "[x] "
	}
	switch {
	case c.Disabled:
		return theme.Disabled.Render(box + c.Label)
	case c.Active:
		return theme.Selected.Render(box+c.Label) + theme.Hint.Render("  space")
	}
	return theme.Unselected.Render(box + c.Label)
}
