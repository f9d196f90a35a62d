// Package task defines the task model and the ordered task list.
package task

import (
	"errors"
	"strings"
	"time"

	"kiwi/internal/datetime"
)

// Kind tags the task variant.
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// Tag returns the one-letter variant tag used in display and storage.
func (k Kind) Tag() string {
	switch k {
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "T"
	}
}

var (
	// ErrEmptyDescription is returned when a description trims to nothing.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrEndBeforeStart is returned when an event ends before it starts.
	ErrEndBeforeStart = errors.New("End time cannot be before start time")
)

// Task is a todo, deadline, or event.
// By is set only for deadlines; From and To only for events.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	By          time.Time
	From        time.Time
	To          time.Time
}

// NewTodo creates a todo.
func NewTodo(description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrEmptyDescription
	}
	return Task{Kind: KindTodo, Description: description}, nil
}

// NewDeadline creates a deadline due at by.
func NewDeadline(description string, by time.Time) (Task, error) {
	t, err := NewTodo(description)
	if err != nil {
		return Task{}, err
	}
	t.Kind = KindDeadline
	t.By = by.Truncate(time.Minute)
	return t, nil
}

// NewEvent creates an event spanning [from, to].
func NewEvent(description string, from, to time.Time) (Task, error) {
	t, err := NewTodo(description)
	if err != nil {
		return Task{}, err
	}
	from = from.Truncate(time.Minute)
	to = to.Truncate(time.Minute)
	if to.Before(from) {
		return Task{}, ErrEndBeforeStart
	}
	t.Kind = KindEvent
	t.From = from
	t.To = to
	return t, nil
}

// Mark sets the task done.
func (t *Task) Mark() { t.Done = true }

// Unmark sets the task not done.
func (t *Task) Unmark() { t.Done = false }

// DescriptionLower is the key used by search and duplicate detection.
func (t Task) DescriptionLower() string {
	return strings.ToLower(t.Description)
}

// StatusIcon is "X" for done tasks and a space otherwise.
func (t Task) StatusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// String returns the canonical display form, e.g.
// "[D][ ] submit report (by: Feb 15 2026 2359)".
func (t Task) String() string {
	head := "[" + t.Kind.Tag() + "][" + t.StatusIcon() + "] " + t.Description
	switch t.Kind {
	case KindDeadline:
		return head + " (by: " + datetime.Display(t.By) + ")"
	case KindEvent:
		// The end date is intentionally not shown.
		return head + " (at: " + datetime.DisplayDate(t.From) + " " +
			datetime.Clock(t.From) + " - " + datetime.Clock(t.To) + ")"
	default:
		return head
	}
}
