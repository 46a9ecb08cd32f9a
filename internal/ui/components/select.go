package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoehwa/internal/ui/theme"
)

// Option is one choice of a Select.
type Option struct {
	Value string
	Label string
}

// Select is a single-line option picker cycled with left and right.
type Select struct {
	Label    string
	Options  []Option
	Selected int
	Active   bool
}

// NewSelect creates a Select with the option matching value selected,
// or the first option when none matches.
func NewSelect(label string, options []Option, value string) Select {
	s := Select{Label: label, Options: options}
	for i, o := range options {
		if o.Value == value {
			s.Selected = i
		}
	}
	return s
}

// Update handles left/right navigation while active.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if !s.Active || len(s.Options) == 0 {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	case "right", "l":
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
	return s, nil
}

// Value returns the selected option's value.
func (s Select) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Selected].Value
}

// View renders every option with the selected one highlighted.
func (s Select) View() string {
	label := theme.Label.Render(s.Label)
	if s.Active {
		label = theme.Label.Foreground(theme.Primary).Render(s.Label)
	}

	parts := make([]string, len(s.Options))
	for i, o := range s.Options {
		if i == s.Selected {
			text := "[" + o.Label + "]"
			if s.Active {
				parts[i] = theme.Selected.Render(text)
			} else {
				parts[i] = theme.Unselected.Bold(true).Render(text)
			}
		} else {
			parts[i] = theme.Subtitle.Render(" " + o.Label + " ")
		}
	}

	view := label + strings.Join(parts, " ")
	if s.Active {
		view += theme.Hint.Render("  ←/→")
	}
	return view
}
