package session

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hoehwa/internal/level"
)

func TestLog_EmptyExport(t *testing.T) {
	l := NewLog()
	assert.Equal(t, EmptyLogText, l.Export())
	assert.NotEmpty(t, l.Export())
}

func TestEntry_Format(t *testing.T) {
	e := Entry{
		Timestamp: time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local),
		Place:     "식당",
		Situation: "저녁 주문",
		Role:      "손님",
		Level:     level.Intermediate,
		Output:    "1.\n메뉴 좀 주세요.\n请给我菜单。",
	}
	want := "2024-03-09 14:05:07\n" +
		"입력:\n" +
		"장소: 식당\n" +
		"상황: 저녁 주문\n" +
		"역할: 손님\n" +
		"레벨: 중급\n\n" +
		"출력:\n1.\n메뉴 좀 주세요.\n请给我菜单。\n\n"
	assert.Equal(t, want, e.Format())
}

func TestLog_AppendOrder(t *testing.T) {
	l := NewLog()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	l.Append(Entry{Timestamp: ts, Place: "A", Level: level.Basic, Output: "first"})
	l.Append(Entry{Timestamp: ts.Add(time.Minute), Place: "B", Level: level.Basic, Output: "second"})

	require.Equal(t, 2, l.Len())
	out := l.Export()
	assert.Less(t, indexOf(out, "first"), indexOf(out, "second"))
	assert.NotContains(t, out, EmptyLogText)

	entries := l.Entries()
	entries[0].Output = "mutated"
	assert.Equal(t, "first", l.Entries()[0].Output)
}

func TestLog_WriteToAndSave(t *testing.T) {
	l := NewLog()
	l.Append(Entry{Timestamp: time.Now(), Place: "A", Level: level.Basic, Output: "x"})

	var buf bytes.Buffer
	_, err := l.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, l.Export(), buf.String())

	dir := filepath.Join(t.TempDir(), "out")
	path, err := l.SaveExport(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ExportFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, l.Export(), string(data))
}

func indexOf(s, sub string) int {
	return bytes.Index([]byte(s), []byte(sub))
}
