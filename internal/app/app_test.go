package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/llm"
	"github.com/abhisek/hoehwa/internal/router"
	"github.com/abhisek/hoehwa/internal/session"
)

func newTestModel() AppModel {
	gen := convgen.New(llm.NewMockProvider(), convgen.DefaultConfig())
	return newAppModel(Options{Controller: session.NewController(gen, nil), ExportDir: ""})
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Fatal("expected no command at root")
	}
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := newTestModel()
	updated, cmd := m.Update(tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	m = updated.(AppModel)
	if cmd == nil {
		t.Fatal("expected push command for ctrl+l")
	}
	updated, _ = m.Update(cmd())
	m = updated.(AppModel)
	if m.router.Depth() != 2 {
		t.Fatalf("expected log screen pushed, depth %d", m.router.Depth())
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}

func TestViewRendersAfterResize(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(AppModel)
	v := m.View()
	if !v.AltScreen {
		t.Fatal("expected alt screen")
	}
}
