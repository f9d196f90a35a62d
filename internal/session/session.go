package session

import (
	"errors"
	"io"
	"log"

	"kiwi/internal/clock"
	"kiwi/internal/parser"
	"kiwi/internal/task"
)

// Session holds the task list between lines of input.
type Session struct {
	list   *task.List
	saver  Saver
	clock  clock.Clock
	logger *log.Logger
}

// New creates a session over list. A nil logger discards output.
func New(list *task.List, saver Saver, clk clock.Clock, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{list: list, saver: saver, clock: clk, logger: logger}
}

// List returns the live task list.
func (s *Session) List() *task.List { return s.list }

// Parse parses line against the session clock.
func (s *Session) Parse(line string) (parser.Command, error) {
	return parser.Parse(line, s.clock)
}

// Execute applies cmd to the session list.
func (s *Session) Execute(cmd parser.Command) Result {
	res := Execute(cmd, s.list, s.saver)
	if res.Err != nil {
		s.logger.Printf("%s: %v", cmd, res.Err)
	}
	return res
}

// Process parses and executes one line of input.
func (s *Session) Process(line string) Result {
	cmd, err := s.Parse(line)
	if err != nil {
		var ue *parser.UserError
		if errors.As(err, &ue) {
			return Result{Text: ue.Message, Err: err}
		}
		return Result{Text: err.Error(), Err: err}
	}
	return s.Execute(cmd)
}

// Replace overwrites the task a duplicate was reported against with the
// rejected new task.
func (s *Session) Replace(dup *DuplicateError) Result {
	if _, err := s.list.Replace(dup.Index, dup.New); err != nil {
		return indexFailure(err)
	}
	return Result{Text: Replaced(dup.New)}
}
