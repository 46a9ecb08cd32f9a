package form

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hoehwa/internal/session"
	"github.com/abhisek/hoehwa/internal/ui/layout"
	"github.com/abhisek/hoehwa/internal/ui/theme"
)

func (s *FormScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.language.View() + "\n")
	b.WriteString(s.questionType.View() + "\n")
	b.WriteString(theme.Label.Render("") + s.formal.View() + "\n")
	b.WriteString(s.place.View() + "\n")
	b.WriteString(s.situation.View() + "\n")
	b.WriteString(s.role.View() + "\n")
	b.WriteString(s.level.View() + "\n\n")
	b.WriteString(theme.Label.Render("") + s.submit.View() + "\n")

	switch {
	case s.state.Phase == session.PhasePending:
		b.WriteString("\n" + s.spinner.View() + "\n")
	case s.lastRejected && s.lastMissing != "":
		b.WriteString("\n" + theme.WarningText.Render("다음 항목을 입력하세요: "+s.lastMissing) + "\n")
	case s.state.Failure != nil:
		f := s.state.Failure
		b.WriteString("\n" + theme.ErrorText.Render(f.Summary()) + "\n")
		b.WriteString(theme.Hint.Render(f.Message) + "\n")
	}

	formView := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	remaining := height - lipgloss.Height(formView) - 1
	if s.state.Latest == nil || remaining < 3 {
		return formView
	}

	latest := s.state.Latest
	title := theme.Title.Render(latest.Title())
	body, offset := layout.Window(latest.Content.Text, s.scroll, remaining-3)
	s.scroll = offset
	output := theme.Card.Width(width - 4).Render(title + "\n" + theme.Body.Render(body))

	return formView + "\n" + lipgloss.NewStyle().PaddingLeft(1).Render(output)
}
