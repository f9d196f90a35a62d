package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestNewTodo_TrimsDescription(t *testing.T) {
	todo, err := NewTodo("  read   book  ")
	require.NoError(t, err)

	assert.Equal(t, KindTodo, todo.Kind)
	assert.Equal(t, "read   book", todo.Description)
	assert.False(t, todo.Done)
}

func TestNewTodo_Empty(t *testing.T) {
	_, err := NewTodo("   ")
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestNewDeadline_DropsSeconds(t *testing.T) {
	dl, err := NewDeadline("submit report", time.Date(2026, 2, 15, 23, 59, 42, 5, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, at(2026, 2, 15, 23, 59), dl.By)
}

func TestNewEvent_EndBeforeStart(t *testing.T) {
	_, err := NewEvent("bad", at(2026, 2, 12, 16, 0), at(2026, 2, 12, 14, 0))
	require.ErrorIs(t, err, ErrEndBeforeStart)
	assert.Equal(t, "End time cannot be before start time", err.Error())
}

func TestNewEvent_ZeroLength(t *testing.T) {
	ev, err := NewEvent("standup", at(2026, 2, 12, 9, 0), at(2026, 2, 12, 9, 0))
	require.NoError(t, err)
	assert.False(t, ev.To.Before(ev.From))
}

func TestString(t *testing.T) {
	todo, _ := NewTodo("read book")
	dl, _ := NewDeadline("submit report", at(2026, 2, 15, 23, 59))
	ev, _ := NewEvent("team sync", at(2026, 2, 12, 14, 0), at(2026, 2, 12, 16, 0))

	assert.Equal(t, "[T][ ] read book", todo.String())
	assert.Equal(t, "[D][ ] submit report (by: Feb 15 2026 2359)", dl.String())
	assert.Equal(t, "[E][ ] team sync (at: Feb 12 2026 1400 - 1600)", ev.String())

	todo.Mark()
	assert.Equal(t, "[T][X] read book", todo.String())
}

func TestString_EventAcrossDaysShowsStartDateOnly(t *testing.T) {
	ev, err := NewEvent("trip", at(2026, 3, 1, 8, 0), at(2026, 3, 3, 20, 0))
	require.NoError(t, err)

	assert.Equal(t, "[E][ ] trip (at: Mar 1 2026 0800 - 2000)", ev.String())
}

func TestMarkUnmark(t *testing.T) {
	todo, _ := NewTodo("x")

	todo.Mark()
	todo.Mark()
	assert.True(t, todo.Done)

	todo.Unmark()
	todo.Unmark()
	assert.False(t, todo.Done)
}

func TestDescriptionLower(t *testing.T) {
	todo, _ := NewTodo("Read BOOK")
	assert.Equal(t, "read book", todo.DescriptionLower())
}
