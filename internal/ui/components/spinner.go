package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoehwa/internal/ui/theme"
)

// SpinnerTickMsg advances a Spinner.
type SpinnerTickMsg = spinner.TickMsg

// Spinner is a labelled busy indicator.
type Spinner struct {
	Label string
	model spinner.Model
}

// NewSpinner creates a braille spinner with the given label.
func NewSpinner(label string) Spinner {
	return Spinner{
		Label: label,
		model: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(theme.Selected),
		),
	}
}

// Tick starts the animation.
func (s Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

// Update advances the frame on the spinner's own ticks and schedules the
// next one. Other messages are ignored.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return s, cmd
}

// View renders the current frame and label.
func (s Spinner) View() string {
	return s.model.View() + " " + theme.Subtitle.Render(s.Label)
}
