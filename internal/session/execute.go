// Package session applies parsed commands to a task list and produces the
// response text a host prints.
package session

import (
	"errors"
	"fmt"

	"kiwi/internal/output"
	"kiwi/internal/parser"
	"kiwi/internal/task"
)

// Response strings.
const (
	Welcome = "Hello! I'm Kiwi\nWhat can i do for you?"

	MsgBye           = "Byebye. Hope to see you again soon!"
	MsgSaveFailed    = "Unable to save tasks to file"
	MsgEmpty         = "No tasks yet!"
	MsgNoMatches     = "No matching tasks found."
	MsgCleared       = "All tasks have been cleared!"
	MsgAlreadyEmpty  = "Task list is already empty!"
	MsgInvalidIndex  = "Please enter a valid task number"
	MsgMarked        = "Nice! I've marked this task as done:"
	MsgUnmarked      = "OK, I've marked this task as not done yet:"
	MsgRemoved       = "Noted. I've removed this task:"
	MsgDuplicate     = "Duplicate task found:"
	MsgEmptyDesc     = "Description cannot be empty"
	msgAddedFormat   = "Added: %s\nThere are now %d tasks in the list"
	msgRemovedFormat = "\nNow you have %d tasks in the list."
)

// Saver persists a task list.
type Saver interface {
	Save(l *task.List) error
}

// Result is the outcome of one command.
type Result struct {
	// Text is the response to show. It is never empty.
	Text string

	// Stop is set after bye; the host should end the session.
	Stop bool

	// Err is the failure behind Text, if any. Hosts inspect it with
	// errors.As, e.g. for *DuplicateError.
	Err error
}

// DuplicateError reports an add whose description matches an existing task,
// ignoring case.
type DuplicateError struct {
	Existing task.Task
	Index    int // 1-based position of Existing
	New      task.Task
}

func (e *DuplicateError) Error() string {
	return output.Echo(MsgDuplicate, e.Existing)
}

// Execute applies cmd to l. Bye saves through saver. Every outcome, failures
// included, is reported through the returned Result.
func Execute(cmd parser.Command, l *task.List, saver Saver) Result {
	switch c := cmd.(type) {
	case parser.Bye:
		if err := saver.Save(l); err != nil {
			return Result{Text: MsgSaveFailed, Stop: true, Err: err}
		}
		return Result{Text: MsgBye, Stop: true}

	case parser.List:
		if l.Len() == 0 {
			return Result{Text: MsgEmpty}
		}
		return Result{Text: output.Numbered(output.ListHeader, l.Tasks())}

	case parser.Help:
		return Result{Text: output.Help(parser.Forms)}

	case parser.Clear:
		if l.Len() == 0 {
			return Result{Text: MsgAlreadyEmpty}
		}
		l.Clear()
		return Result{Text: MsgCleared}

	case parser.Todo:
		return add(l, func() (task.Task, error) { return task.NewTodo(c.Description) })

	case parser.Deadline:
		return add(l, func() (task.Task, error) { return task.NewDeadline(c.Description, c.By) })

	case parser.Event:
		return add(l, func() (task.Task, error) { return task.NewEvent(c.Description, c.From, c.To) })

	case parser.Mark:
		t, err := l.Mark(c.Index)
		if err != nil {
			return indexFailure(err)
		}
		return Result{Text: output.Echo(MsgMarked, t)}

	case parser.Unmark:
		t, err := l.Unmark(c.Index)
		if err != nil {
			return indexFailure(err)
		}
		return Result{Text: output.Echo(MsgUnmarked, t)}

	case parser.Delete:
		t, err := l.Delete(c.Index)
		if err != nil {
			return indexFailure(err)
		}
		return Result{Text: output.Echo(MsgRemoved, t) + fmt.Sprintf(msgRemovedFormat, l.Len())}

	case parser.Find:
		matches := l.Find(c.Keyword)
		if len(matches) == 0 {
			return Result{Text: MsgNoMatches}
		}
		return Result{Text: output.Numbered(output.MatchHeader, matches)}
	}

	err := fmt.Errorf("unsupported command %T", cmd)
	return Result{Text: err.Error(), Err: err}
}

func add(l *task.List, build func() (task.Task, error)) Result {
	t, err := build()
	switch {
	case errors.Is(err, task.ErrEmptyDescription):
		return Result{Text: MsgEmptyDesc, Err: err}
	case err != nil:
		return Result{Text: err.Error(), Err: err}
	}

	if i := l.IndexOf(t.DescriptionLower()); i > 0 {
		existing, _ := l.Get(i)
		dup := &DuplicateError{Existing: existing, Index: i, New: t}
		return Result{Text: dup.Error(), Err: dup}
	}

	l.Add(t)
	return Result{Text: fmt.Sprintf(msgAddedFormat, t, l.Len())}
}

func indexFailure(err error) Result {
	return Result{Text: MsgInvalidIndex, Err: err}
}

// Replaced is the response after a duplicate is overwritten.
func Replaced(t task.Task) string {
	return "Replaced: " + t.String()
}
