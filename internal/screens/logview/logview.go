package logview

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hoehwa/internal/screen"
	"github.com/abhisek/hoehwa/internal/session"
	"github.com/abhisek/hoehwa/internal/ui/layout"
	"github.com/abhisek/hoehwa/internal/ui/theme"
)

// LogScreen shows the session log and saves it to disk.
type LogScreen struct {
	log       *session.Log
	exportDir string
	scroll    int
	savedPath string
	saveErr   error
}

var _ screen.Screen = (*LogScreen)(nil)
var _ screen.KeyHintProvider = (*LogScreen)(nil)

// New creates a log screen over log. Saved files go to exportDir.
func New(log *session.Log, exportDir string) *LogScreen {
	return &LogScreen{log: log, exportDir: exportDir}
}

func (s *LogScreen) Init() tea.Cmd { return nil }

func (s *LogScreen) Title() string { return "대화 내용" }

func (s *LogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "S", Description: session.ExportFileName + " 저장"},
		{Key: "↑↓/PgUp/PgDn", Description: "스크롤"},
		{Key: "Esc", Description: "뒤로"},
	}
}

func (s *LogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "s", "S":
		s.savedPath, s.saveErr = s.log.SaveExport(s.exportDir)
	case "up", "k":
		s.scroll--
	case "down", "j":
		s.scroll++
	case "pgup":
		s.scroll -= 10
	case "pgdown":
		s.scroll += 10
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
	return s, nil
}

func (s *LogScreen) View(width, height int) string {
	var status string
	switch {
	case s.saveErr != nil:
		status = theme.ErrorText.Render("저장 실패: " + s.saveErr.Error())
	case s.savedPath != "":
		status = theme.SuccessText.Render("저장됨: " + s.savedPath)
	default:
		status = theme.Hint.Render(fmt.Sprintf("기록 %d건", s.log.Len()))
	}

	bodyHeight := height - 4
	body, offset := layout.Window(s.log.Export(), s.scroll, bodyHeight)
	s.scroll = offset

	return lipgloss.NewStyle().Padding(1, 2).Render(status + "\n\n" + theme.Body.Render(body))
}
