package form

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/level"
	"github.com/abhisek/hoehwa/internal/llm"
	"github.com/abhisek/hoehwa/internal/router"
	"github.com/abhisek/hoehwa/internal/screens/logview"
	"github.com/abhisek/hoehwa/internal/session"
)

func newTestScreen(responses ...llm.MockResponse) (*FormScreen, *llm.MockProvider, *session.State) {
	mock := llm.NewMockProvider(responses...)
	ctrl := session.NewController(convgen.New(mock, convgen.DefaultConfig()), nil)
	st := session.NewState()
	return New(st, ctrl, ""), mock, st
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *FormScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// focusOn tabs until the given field has focus.
func focusOn(t *testing.T, s *FormScreen, f focus) {
	t.Helper()
	for i := 0; i < int(focusCount) && s.focus != f; i++ {
		s.Update(key(tea.KeyTab))
	}
	if s.focus != f {
		t.Fatalf("could not focus %d", f)
	}
}

func fillRequired(t *testing.T, s *FormScreen) {
	t.Helper()
	focusOn(t, s, focusPlace)
	typeText(s, "호텔")
	focusOn(t, s, focusSituation)
	typeText(s, "체크인")
	focusOn(t, s, focusRole)
	typeText(s, "손님")
}

// runCmd executes cmd and feeds every produced message back into s,
// skipping spinner ticks.
func runCmd(s *FormScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(s, c)
		}
		return
	}
	if _, ok := msg.(generationDoneMsg); ok {
		s.Update(msg)
	}
}

func TestInitialSelectionsFromState(t *testing.T) {
	s, _, _ := newTestScreen()
	if s.language.Value() != string(convgen.Chinese) {
		t.Errorf("expected zh, got %q", s.language.Value())
	}
	if s.level.Value() != string(level.Basic) {
		t.Errorf("expected basic, got %q", s.level.Value())
	}
	if s.formal.Disabled {
		t.Error("formal should be enabled for Chinese")
	}
}

func TestSubmitMissingFieldsShowsWarning(t *testing.T) {
	s, mock, st := newTestScreen()

	_, cmd := s.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("expected no command for invalid form")
	}
	if mock.CallCount() != 0 {
		t.Fatal("expected no model call")
	}
	if st.Phase != session.PhaseIdle {
		t.Fatal("expected idle")
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "다음 항목을 입력하세요: 장소, 상황, 역할") {
		t.Errorf("expected missing warning in view:\n%s", view)
	}
}

func TestSubmitSuccess(t *testing.T) {
	s, mock, st := newTestScreen(llm.MockResponse{Text: "1.\n빈 방 있어요?\n有空房吗？"})
	fillRequired(t, s)

	_, cmd := s.Update(key(tea.KeyEnter))
	if st.Phase != session.PhasePending {
		t.Fatal("expected pending after valid submit")
	}
	if !strings.Contains(s.View(100, 40), "예문을 작성 중입니다...") {
		t.Error("expected busy indicator while pending")
	}

	// Keys are ignored while pending.
	s.Update(key(tea.KeyEnter))

	runCmd(s, cmd)

	if mock.CallCount() != 1 {
		t.Fatalf("expected one model call, got %d", mock.CallCount())
	}
	if st.Phase != session.PhaseIdle {
		t.Fatal("expected idle after completion")
	}
	if st.Log.Len() != 1 {
		t.Fatalf("expected one log entry, got %d", st.Log.Len())
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "생성된 질문") || !strings.Contains(view, "有空房吗？") {
		t.Errorf("expected generated output in view:\n%s", view)
	}
	call, _ := mock.LastCall()
	if !strings.Contains(call.Messages[0].Content, "장소: 호텔") {
		t.Errorf("unexpected query: %s", call.Messages[0].Content)
	}
}

func TestSubmitFailureShowsError(t *testing.T) {
	s, _, st := newTestScreen(llm.MockResponse{Err: &llm.TransportError{Provider: "mock"}})
	fillRequired(t, s)

	_, cmd := s.Update(key(tea.KeyEnter))
	runCmd(s, cmd)

	if st.Failure == nil || st.Failure.Kind != session.FailureTransport {
		t.Fatalf("expected transport failure, got %+v", st.Failure)
	}
	if st.Log.Len() != 0 {
		t.Fatal("failure must not be logged")
	}
	if !strings.Contains(s.View(100, 40), "모델 서버에 연결하지 못했습니다.") {
		t.Error("expected failure summary in view")
	}
}

func TestSelectsAndFormalToggle(t *testing.T) {
	s, mock, _ := newTestScreen(llm.MockResponse{Text: "ok"})

	focusOn(t, s, focusFormal)
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !s.formal.Checked {
		t.Fatal("expected formal checked")
	}

	focusOn(t, s, focusQuestionType)
	s.Update(key(tea.KeyRight))
	if s.questionType.Value() != string(convgen.QuestionAndAnswer) {
		t.Fatalf("expected qa, got %q", s.questionType.Value())
	}

	focusOn(t, s, focusLevel)
	s.Update(key(tea.KeyRight))
	s.Update(key(tea.KeyRight))
	if s.level.Value() != string(level.Advanced) {
		t.Fatalf("expected advanced, got %q", s.level.Value())
	}

	fillRequired(t, s)
	_, cmd := s.Update(key(tea.KeyEnter))
	runCmd(s, cmd)

	call, ok := mock.LastCall()
	if !ok {
		t.Fatal("expected a model call")
	}
	if !strings.Contains(call.System, "甄选人才") {
		t.Error("expected formal block for Chinese")
	}
	if !strings.Contains(call.Messages[0].Content, "질문 5개와 그에 대한 답변") {
		t.Error("expected Q&A query")
	}
}

func TestEnglishSkipsFormalFocus(t *testing.T) {
	s, _, _ := newTestScreen()

	focusOn(t, s, focusLanguage)
	s.Update(key(tea.KeyRight))
	if s.language.Value() != string(convgen.English) {
		t.Fatalf("expected en, got %q", s.language.Value())
	}
	if !s.formal.Disabled {
		t.Fatal("formal should be disabled for English")
	}

	s.Update(key(tea.KeyTab))
	s.Update(key(tea.KeyTab))
	if s.focus != focusPlace {
		t.Fatalf("expected focus to skip formal, got %d", s.focus)
	}
}

func TestSpaceTypesIntoTextInput(t *testing.T) {
	s, _, _ := newTestScreen()
	focusOn(t, s, focusPlace)
	typeText(s, "서울 역")
	if s.place.Value() != "서울 역" {
		t.Fatalf("expected space in text, got %q", s.place.Value())
	}
}

func TestCtrlLOpensLog(t *testing.T) {
	s, _, _ := newTestScreen()
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*logview.LogScreen); !ok {
		t.Fatalf("expected log screen, got %T", push.Screen)
	}
}
