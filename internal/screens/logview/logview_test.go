package logview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hoehwa/internal/level"
	"github.com/abhisek/hoehwa/internal/session"
)

func TestViewShowsPlaceholderWhenEmpty(t *testing.T) {
	s := New(session.NewLog(), t.TempDir())
	if !strings.Contains(s.View(100, 30), session.EmptyLogText) {
		t.Fatal("expected placeholder text")
	}
}

func TestSaveWritesExport(t *testing.T) {
	log := session.NewLog()
	log.Append(session.Entry{Timestamp: time.Now(), Place: "도서관", Situation: "책 대출", Role: "학생", Level: level.Basic, Output: "1.\n책을 빌리고 싶어요."})
	dir := t.TempDir()
	s := New(log, dir)

	s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})

	path := filepath.Join(dir, session.ExportFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != log.Export() {
		t.Fatal("saved file does not match export")
	}
	if !strings.Contains(s.View(100, 30), path) {
		t.Error("expected saved path in view")
	}
}

func TestScrollClamps(t *testing.T) {
	s := New(session.NewLog(), t.TempDir())
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.scroll != 0 {
		t.Fatalf("scroll should not go negative, got %d", s.scroll)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	s.View(100, 30)
	if s.scroll != 0 {
		t.Fatalf("scroll should clamp to content, got %d", s.scroll)
	}
}
