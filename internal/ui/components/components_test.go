package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestSelect_CyclesWhenActive(t *testing.T) {
	s := NewSelect("언어", []Option{{"zh", "중국어"}, {"en", "영어"}}, "en")
	if s.Value() != "en" {
		t.Fatalf("expected initial en, got %q", s.Value())
	}

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.Value() != "en" {
		t.Fatal("inactive select should ignore keys")
	}

	s.Active = true
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.Value() != "zh" {
		t.Fatalf("expected wrap to zh, got %q", s.Value())
	}
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.Value() != "en" {
		t.Fatalf("expected wrap back to en, got %q", s.Value())
	}
	if !strings.Contains(s.View(), "[영어]") {
		t.Errorf("expected selected option bracketed, got %q", s.View())
	}
}

func TestSelect_UnknownValueSelectsFirst(t *testing.T) {
	s := NewSelect("x", []Option{{"a", "A"}, {"b", "B"}}, "zzz")
	if s.Value() != "a" {
		t.Fatalf("expected a, got %q", s.Value())
	}
	if (Select{}).Value() != "" {
		t.Fatal("empty select should have empty value")
	}
}

func TestCheckbox_Toggle(t *testing.T) {
	c := Checkbox{Label: "격식 용어 사용", Active: true}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !c.Checked {
		t.Fatal("expected checked after space")
	}

	c.Disabled = true
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !c.Checked {
		t.Fatal("disabled checkbox should not toggle")
	}
}

func TestSpinner_AdvancesOnOwnTicks(t *testing.T) {
	s := NewSpinner("작성 중")
	first := s.View()
	if !strings.Contains(first, "작성 중") {
		t.Fatal("expected label in view")
	}

	tick := s.Tick()
	if tick == nil {
		t.Fatal("expected a tick command")
	}
	s, next := s.Update(tick())
	if next == nil {
		t.Fatal("expected the next tick to be scheduled")
	}
	if s.View() == first {
		t.Fatal("expected frame to change")
	}

	other := NewSpinner("다른 작업")
	before := s.View()
	s, next = s.Update(other.Tick()())
	if next != nil || s.View() != before {
		t.Fatal("ticks from another spinner must be ignored")
	}
}

func TestTextInput_MissingFlagClearsOnInput(t *testing.T) {
	ti := NewTextInput("장소", "", 0)
	ti.Focus()
	ti.MarkMissing(true)
	if !strings.Contains(ti.View(), "필수") {
		t.Fatal("expected required marker")
	}
	ti, _ = ti.Update(tea.KeyPressMsg{Code: '집', Text: "집"})
	if ti.Value() != "집" {
		t.Fatalf("expected typed value, got %q", ti.Value())
	}
	if strings.Contains(ti.View(), "필수") {
		t.Fatal("expected marker cleared after typing")
	}
}
