package output

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiwi/internal/parser"
	"kiwi/internal/task"
)

func TestNumbered(t *testing.T) {
	a, _ := task.NewTodo("read book")
	b, _ := task.NewDeadline("submit report", time.Date(2026, 2, 15, 23, 59, 0, 0, time.UTC))

	assert.Equal(t,
		"Here are your tasks:\n1. [T][ ] read book\n2. [D][ ] submit report (by: Feb 15 2026 2359)",
		Numbered(ListHeader, []task.Task{a, b}))
	assert.Equal(t, MatchHeader, Numbered(MatchHeader, nil))
}

func TestEcho(t *testing.T) {
	a, _ := task.NewTodo("read book")
	a.Mark()

	assert.Equal(t, "Nice!\n  [T][X] read book", Echo("Nice!", a))
}

func TestHelp_ListsEveryForm(t *testing.T) {
	got := Help(parser.Forms)
	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), len(parser.Forms))

	for i, f := range parser.Forms {
		line := lines[i+1]
		assert.True(t, strings.HasPrefix(line, Indent+f.Usage()), line)
		assert.True(t, strings.HasSuffix(line, f.Summary), line)
	}
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "a b c", SingleLine("a\nb\nc"))
	assert.Equal(t, "a  b", SingleLine("a\r\nb"))
}
