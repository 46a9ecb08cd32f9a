package form

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/level"
	"github.com/abhisek/hoehwa/internal/router"
	"github.com/abhisek/hoehwa/internal/screen"
	"github.com/abhisek/hoehwa/internal/screens/logview"
	"github.com/abhisek/hoehwa/internal/session"
	"github.com/abhisek/hoehwa/internal/ui/components"
	"github.com/abhisek/hoehwa/internal/ui/layout"
)

// focus identifies the widget that receives keys.
type focus int

const (
	focusLanguage focus = iota
	focusQuestionType
	focusFormal
	focusPlace
	focusSituation
	focusRole
	focusLevel
	focusSubmit
	focusCount
)

// FormScreen is the conversation form and its generated output.
type FormScreen struct {
	state      *session.State
	controller *session.Controller
	exportDir  string

	language     components.Select
	questionType components.Select
	formal       components.Checkbox
	place        components.TextInput
	situation    components.TextInput
	role         components.TextInput
	level        components.Select
	submit       components.Button
	spinner      components.Spinner

	focus        focus
	scroll       int
	lastMissing  string
	lastRejected bool
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the form screen over st. Widgets start from st.Form.
func New(st *session.State, controller *session.Controller, exportDir string) *FormScreen {
	s := &FormScreen{
		state:      st,
		controller: controller,
		exportDir:  exportDir,
		place:      components.NewTextInput("장소", "예: 회사 면접장", 100),
		situation:  components.NewTextInput("상황", "예: 신입 채용 면접", 200),
		role:       components.NewTextInput("역할", "예: 지원자", 100),
		submit:     components.NewButton("예문 생성"),
		spinner:    components.NewSpinner("예문을 작성 중입니다..."),
	}

	var langs []components.Option
	for _, l := range convgen.Languages() {
		langs = append(langs, components.Option{Value: string(l), Label: l.Name()})
	}
	var types []components.Option
	for _, q := range convgen.QuestionTypes() {
		types = append(types, components.Option{Value: string(q), Label: q.Label()})
	}
	var levels []components.Option
	for _, r := range level.All() {
		levels = append(levels, components.Option{Value: string(r.Level), Label: r.Label})
	}

	f := st.Form
	s.language = components.NewSelect("언어", langs, string(f.Language))
	s.questionType = components.NewSelect("질문 유형", types, string(f.QuestionType))
	s.level = components.NewSelect("레벨", levels, string(f.Level))
	s.formal = components.Checkbox{Label: "격식 용어 사용", Checked: f.Formal}
	s.place.SetValue(f.Place)
	s.situation.SetValue(f.Situation)
	s.role.SetValue(f.Role)

	s.syncFormal()
	s.applyFocus()
	return s
}

func (s *FormScreen) Init() tea.Cmd {
	return nil
}

func (s *FormScreen) Title() string {
	return "예문 생성"
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	if s.state.Phase == session.PhasePending {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "종료"}}
	}
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "이동"},
		{Key: "←→", Description: "선택"},
		{Key: "Enter", Description: "생성"},
		{Key: "PgUp/PgDn", Description: "스크롤"},
		{Key: "Ctrl+L", Description: "로그"},
		{Key: "Ctrl+C", Description: "종료"},
	}
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generationDoneMsg:
		s.controller.Finish(s.state, msg.Completion)
		s.scroll = 0
		return s, nil

	case components.SpinnerTickMsg:
		if s.state.Phase != session.PhasePending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.state.Phase == session.PhasePending {
			return s, nil
		}
		return s.handleKey(msg)
	}

	return s, s.updateFocused(msg)
}

func (s *FormScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s, s.submitForm()
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "pgup":
		s.scroll -= 5
		if s.scroll < 0 {
			s.scroll = 0
		}
		return s, nil
	case "pgdown":
		s.scroll += 5
		return s, nil
	case "ctrl+l":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: logview.New(s.state.Log, s.exportDir)}
		}
	}

	cmd := s.updateFocused(msg)
	s.syncFormal()
	return s, cmd
}

// updateFocused forwards msg to the focused widget.
func (s *FormScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusLanguage:
		s.language, cmd = s.language.Update(msg)
	case focusQuestionType:
		s.questionType, cmd = s.questionType.Update(msg)
	case focusFormal:
		s.formal, cmd = s.formal.Update(msg)
	case focusPlace:
		s.place, cmd = s.place.Update(msg)
	case focusSituation:
		s.situation, cmd = s.situation.Update(msg)
	case focusRole:
		s.role, cmd = s.role.Update(msg)
	case focusLevel:
		s.level, cmd = s.level.Update(msg)
	}
	return cmd
}

// moveFocus steps focus by delta, skipping the formal checkbox when the
// selected language has no formal mode.
func (s *FormScreen) moveFocus(delta int) tea.Cmd {
	next := s.focus
	for {
		next = (next + focus(delta) + focusCount) % focusCount
		if next != focusFormal || !s.formal.Disabled {
			break
		}
	}
	s.focus = next
	return s.applyFocus()
}

func (s *FormScreen) applyFocus() tea.Cmd {
	s.language.Active = s.focus == focusLanguage
	s.questionType.Active = s.focus == focusQuestionType
	s.formal.Active = s.focus == focusFormal
	s.level.Active = s.focus == focusLevel
	s.submit.Active = s.focus == focusSubmit

	s.place.Blur()
	s.situation.Blur()
	s.role.Blur()
	switch s.focus {
	case focusPlace:
		return s.place.Focus()
	case focusSituation:
		return s.situation.Focus()
	case focusRole:
		return s.role.Focus()
	}
	return nil
}

// syncFormal enables the formal checkbox only for languages that use it.
func (s *FormScreen) syncFormal() {
	s.formal.Disabled = !convgen.Language(s.language.Value()).SupportsFormal()
}

func (s *FormScreen) currentForm() session.Form {
	return session.Form{
		Language:     convgen.Language(s.language.Value()),
		QuestionType: convgen.QuestionType(s.questionType.Value()),
		Formal:       s.formal.Checked,
		Place:        s.place.Value(),
		Situation:    s.situation.Value(),
		Role:         s.role.Value(),
		Level:        level.Level(s.level.Value()),
	}
}

func (s *FormScreen) submitForm() tea.Cmd {
	pending, result, err := s.controller.Begin(s.state, s.currentForm())
	if err != nil {
		return nil
	}

	s.place.MarkMissing(false)
	s.situation.MarkMissing(false)
	s.role.MarkMissing(false)

	if pending == nil {
		s.lastRejected = true
		s.lastMissing = result.MissingLabels()
		for _, f := range result.Missing {
			switch f {
			case session.FieldPlace:
				s.place.MarkMissing(true)
			case session.FieldSituation:
				s.situation.MarkMissing(true)
			case session.FieldRole:
				s.role.MarkMissing(true)
			}
		}
		return nil
	}

	s.lastRejected = false
	s.lastMissing = ""
	controller := s.controller
	p := *pending
	return tea.Batch(
		s.spinner.Tick(),
		func() tea.Msg {
			return generationDoneMsg{Completion: controller.Run(context.Background(), p)}
		},
	)
}
