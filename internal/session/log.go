package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/hoehwa/internal/level"
)

const (
	// EmptyLogText is exported in place of an empty log.
	EmptyLogText = "로그가 아직 생성되지 않았습니다."

	// ExportFileName is the file name offered for the exported log.
	ExportFileName = "conversation_log.txt"

	// ExportMIMEType is the content type of the exported log.
	ExportMIMEType = "text/plain"

	// TimestampLayout is the layout of entry timestamps.
	TimestampLayout = "2006-01-02 15:04:05"
)

// Entry records one successful interaction.
type Entry struct {
	Timestamp time.Time
	Place     string
	Situation string
	Role      string
	Level     level.Level
	Output    string
}

// Format renders the entry as it appears in the exported log.
func (e Entry) Format() string {
	var b strings.Builder
	b.WriteString(e.Timestamp.Format(TimestampLayout))
	b.WriteString("\n입력:\n")
	fmt.Fprintf(&b, "장소: %s\n", e.Place)
	fmt.Fprintf(&b, "상황: %s\n", e.Situation)
	fmt.Fprintf(&b, "역할: %s\n", e.Role)
	fmt.Fprintf(&b, "레벨: %s\n\n", e.Level.Label())
	fmt.Fprintf(&b, "출력:\n%s\n\n", e.Output)
	return b.String()
}

// Log is an append-only, in-memory record of a session's interactions.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds e to the end of the log.
func (l *Log) Append(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Export concatenates every formatted entry, or returns EmptyLogText
// when nothing has been logged yet.
func (l *Log) Export() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return EmptyLogText
	}
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.Format())
	}
	return b.String()
}

// WriteTo writes the export to w.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, l.Export())
	return int64(n), err
}

// SaveExport writes the export to ExportFileName inside dir and returns
// the written path.
func (l *Log) SaveExport(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFileName)
	if err := os.WriteFile(path, []byte(l.Export()), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
