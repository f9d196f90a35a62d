package task

import (
	"errors"
	"strings"
)

// ErrIndexOutOfRange is returned for a 1-based index outside [1, Len()].
var ErrIndexOutOfRange = errors.New("index out of range")

// List is an ordered task collection addressed by 1-based index.
type List struct {
	tasks []Task
}

// NewList creates a list holding tasks in order.
func NewList(tasks ...Task) *List {
	l := &List{}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Add appends t.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Get returns the task at 1-based index i.
func (l *List) Get(i int) (Task, error) {
	if i < 1 || i > len(l.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	return l.tasks[i-1], nil
}

// Mark sets task i done and returns it.
func (l *List) Mark(i int) (Task, error) {
	if i < 1 || i > len(l.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	l.tasks[i-1].Mark()
	return l.tasks[i-1], nil
}

// Unmark sets task i not done and returns it.
func (l *List) Unmark(i int) (Task, error) {
	if i < 1 || i > len(l.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	l.tasks[i-1].Unmark()
	return l.tasks[i-1], nil
}

// Delete removes task i and returns it. Later tasks shift down by one.
func (l *List) Delete(i int) (Task, error) {
	if i < 1 || i > len(l.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	t := l.tasks[i-1]
	l.tasks = append(l.tasks[:i-1], l.tasks[i:]...)
	return t, nil
}

// Replace swaps task i for t in place and returns the old task.
func (l *List) Replace(i int, t Task) (Task, error) {
	if i < 1 || i > len(l.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	old := l.tasks[i-1]
	l.tasks[i-1] = t
	return old, nil
}

// Clear removes every task.
func (l *List) Clear() {
	l.tasks = nil
}

// IndexOf returns the 1-based index of the first task whose lowercased
// description equals key, or 0 when there is none.
func (l *List) IndexOf(key string) int {
	for i, t := range l.tasks {
		if t.DescriptionLower() == key {
			return i + 1
		}
	}
	return 0
}

// Find returns, in order, the tasks whose description contains keyword,
// ignoring case. The keyword is trimmed first.
func (l *List) Find(keyword string) []Task {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	var matches []Task
	for _, t := range l.tasks {
		if strings.Contains(t.DescriptionLower(), keyword) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Tasks returns a copy of the tasks in order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}
