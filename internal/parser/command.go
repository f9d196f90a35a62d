package parser

import (
	"strconv"
	"time"

	"kiwi/internal/datetime"
)

// Command is a parsed user intent. The concrete types are Bye, List, Help,
// Clear, Todo, Deadline, Event, Mark, Unmark, Delete and Find.
//
// String renders the canonical input line for the command; parsing that line
// yields an equal Command.
type Command interface {
	String() string
	command()
}

type (
	Bye   struct{}
	List  struct{}
	Help  struct{}
	Clear struct{}
)

// Todo adds a plain task.
type Todo struct {
	Description string
}

// Deadline adds a task due at By.
type Deadline struct {
	Description string
	By          time.Time
}

// Event adds a task spanning From to To. The range is not validated here.
type Event struct {
	Description string
	From        time.Time
	To          time.Time
}

// Mark, Unmark and Delete address a task by 1-based index. The index is
// known to be positive but is not checked against the list.
type (
	Mark   struct{ Index int }
	Unmark struct{ Index int }
	Delete struct{ Index int }
)

// Find searches descriptions for Keyword.
type Find struct {
	Keyword string
}

func (Bye) command()      {}
func (List) command()     {}
func (Help) command()     {}
func (Clear) command()    {}
func (Todo) command()     {}
func (Deadline) command() {}
func (Event) command()    {}
func (Mark) command()     {}
func (Unmark) command()   {}
func (Delete) command()   {}
func (Find) command()     {}

func (Bye) String() string   { return "bye" }
func (List) String() string  { return "list" }
func (Help) String() string  { return "help" }
func (Clear) String() string { return "clear" }

func (c Todo) String() string { return "todo " + c.Description }

func (c Deadline) String() string {
	return "deadline " + c.Description + sepBy + datetime.Storage(c.By)
}

func (c Event) String() string {
	return "event " + c.Description + sepFrom + datetime.Storage(c.From) + sepTo + datetime.Storage(c.To)
}

func (c Mark) String() string   { return "mark " + strconv.Itoa(c.Index) }
func (c Unmark) String() string { return "unmark " + strconv.Itoa(c.Index) }
func (c Delete) String() string { return "delete " + strconv.Itoa(c.Index) }
func (c Find) String() string   { return "find " + c.Keyword }
