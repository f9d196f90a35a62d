package session_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiwi/internal/clock"
	"kiwi/internal/session"
	"kiwi/internal/storage"
	"kiwi/internal/task"
	"kiwi/internal/testutil"
)

var today = clock.Fixed(time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC))

type recordingSaver struct {
	saved [][]task.Task
	err   error
}

func (r *recordingSaver) Save(l *task.List) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, l.Tasks())
	return nil
}

func newSession(t *testing.T, lines ...string) (*session.Session, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	s := session.New(task.NewList(), saver, today, nil)
	for _, line := range lines {
		res := s.Process(line)
		require.NoError(t, res.Err, line)
	}
	return s, saver
}

func TestProcess_AddTodo(t *testing.T) {
	s, _ := newSession(t)

	res := s.Process("todo read book")
	require.NoError(t, res.Err)
	assert.Equal(t, "Added: [T][ ] read book\nThere are now 1 tasks in the list", res.Text)
	assert.False(t, res.Stop)
	assert.Equal(t, 1, s.List().Len())
}

func TestProcess_DeadlineThenList(t *testing.T) {
	s, _ := newSession(t, "deadline submit report /by 2026-02-15 2359")

	res := s.Process("list")
	assert.Equal(t, "Here are your tasks:\n1. [D][ ] submit report (by: Feb 15 2026 2359)", res.Text)
}

func TestProcess_EventTimeOnlyEnd(t *testing.T) {
	s, _ := newSession(t)

	res := s.Process("event meeting /from 2026-02-12 1400 /to 1600")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Text, "Feb 12 2026 1400 - 1600")

	ev, err := s.List().Get(1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 12, 14, 0, 0, 0, time.UTC), ev.From)
	assert.Equal(t, time.Date(2026, 2, 12, 16, 0, 0, 0, time.UTC), ev.To)
}

func TestProcess_EventEndBeforeStart(t *testing.T) {
	s, _ := newSession(t, "todo keep")

	res := s.Process("event bad /from 2026-02-12 1600 /to 1400")
	assert.ErrorIs(t, res.Err, task.ErrEndBeforeStart)
	assert.Equal(t, "End time cannot be before start time", res.Text)
	assert.Equal(t, 1, s.List().Len())
}

func TestProcess_MarkThenDeleteOutOfRange(t *testing.T) {
	s, _ := newSession(t, "todo read book")

	res := s.Process("mark 1")
	assert.Equal(t, "Nice! I've marked this task as done:\n  [T][X] read book", res.Text)

	res = s.Process("delete 5")
	assert.ErrorIs(t, res.Err, task.ErrIndexOutOfRange)
	assert.Equal(t, "Please enter a valid task number", res.Text)
	assert.Equal(t, 1, s.List().Len())
}

func TestProcess_UnmarkAndDelete(t *testing.T) {
	s, _ := newSession(t, "todo a", "todo b", "mark 2")

	res := s.Process("unmark 2")
	assert.Equal(t, "OK, I've marked this task as not done yet:\n  [T][ ] b", res.Text)

	res = s.Process("delete 1")
	assert.Equal(t, "Noted. I've removed this task:\n  [T][ ] a\nNow you have 1 tasks in the list.", res.Text)

	res = s.Process("unmark 2")
	assert.Equal(t, "Please enter a valid task number", res.Text)
}

func TestProcess_ListEmpty(t *testing.T) {
	s, _ := newSession(t)
	assert.Equal(t, "No tasks yet!", s.Process("list").Text)
}

func TestProcess_Find(t *testing.T) {
	s, _ := newSession(t, "todo Read book", "todo buy milk", "deadline read report /by 2026-02-15 2359")

	res := s.Process("find READ")
	assert.Equal(t,
		"Here are the matching tasks:\n1. [T][ ] Read book\n2. [D][ ] read report (by: Feb 15 2026 2359)",
		res.Text)

	assert.Equal(t, "No matching tasks found.", s.Process("find zebra").Text)
}

func TestProcess_Duplicate(t *testing.T) {
	s, _ := newSession(t, "todo a", "todo Read Book")

	res := s.Process("deadline read book /by 1800")
	assert.Equal(t, "Duplicate task found:\n  [T][ ] Read Book", res.Text)
	assert.Equal(t, 2, s.List().Len())

	var dup *session.DuplicateError
	require.True(t, errors.As(res.Err, &dup))
	assert.Equal(t, 2, dup.Index)
	assert.Equal(t, task.KindDeadline, dup.New.Kind)

	rep := s.Replace(dup)
	assert.Equal(t, "Replaced: [D][ ] read book (by: Feb 4 2026 1800)", rep.Text)

	got, _ := s.List().Get(2)
	assert.Equal(t, task.KindDeadline, got.Kind)
	assert.Equal(t, 2, s.List().Len())
}

func TestProcess_Clear(t *testing.T) {
	s, _ := newSession(t)
	assert.Equal(t, "Task list is already empty!", s.Process("clear").Text)

	s.Process("todo a")
	assert.Equal(t, "All tasks have been cleared!", s.Process("clear").Text)
	assert.Equal(t, 0, s.List().Len())
}

func TestProcess_ParseErrorsAreResponses(t *testing.T) {
	s, _ := newSession(t)

	res := s.Process("frobnicate")
	require.Error(t, res.Err)
	assert.Equal(t, "Unknown command: frobnicate", res.Text)

	res = s.Process("mark x")
	assert.Equal(t, "Invalid task number: x", res.Text)
	assert.False(t, res.Stop)
}

func TestProcess_ByeSaves(t *testing.T) {
	s, saver := newSession(t, "todo a")

	res := s.Process("bye")
	require.NoError(t, res.Err)
	assert.True(t, res.Stop)
	assert.Equal(t, "Byebye. Hope to see you again soon!", res.Text)
	require.Len(t, saver.saved, 1)
	assert.Equal(t, "a", saver.saved[0][0].Description)
}

func TestProcess_ByeSaveFailureStillStops(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	s := session.New(task.NewList(), saver, today, nil)

	res := s.Process("bye")
	assert.True(t, res.Stop)
	assert.Equal(t, "Unable to save tasks to file", res.Text)
	assert.EqualError(t, res.Err, "disk full")
}

func TestProcess_Help(t *testing.T) {
	s, _ := newSession(t)
	testutil.GoldenString(t, "help", s.Process("help").Text)
}

func TestSession_SavesThroughStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "kiwi.txt")
	store := storage.New(path, nil)
	s := session.New(task.NewList(), store, today, nil)

	for _, line := range []string{
		"todo read book",
		"deadline submit report /by 2026-02-15 2359",
		"event meeting /from 2026-02-12 1400 /to 1600",
		"bye",
	} {
		require.NoError(t, s.Process(line).Err, line)
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"T | 0 | read book\n"+
			"D | 0 | submit report | 2026-02-15 2359\n"+
			"E | 0 | meeting | 2026-02-12 1400 to 1600\n",
		string(raw))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, s.List().Tasks(), loaded.Tasks())
}

func TestSession_LoadsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiwi.txt")
	require.NoError(t, os.WriteFile(path,
		[]byte("T | 0 | a\nX | 1 | garbage\nD | 1 | b | 2026-02-15 2359\n"), 0o644))

	list, err := storage.New(path, nil).Load()
	require.NoError(t, err)

	s := session.New(list, &recordingSaver{}, today, nil)
	assert.Equal(t,
		"Here are your tasks:\n1. [T][ ] a\n2. [D][X] b (by: Feb 15 2026 2359)",
		s.Process("list").Text)
}
