// Package parser turns a raw input line into a typed Command.
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"kiwi/internal/clock"
	"kiwi/internal/datetime"
)

const (
	sepBy   = " /by "
	sepFrom = " /from "
	sepTo   = " /to "
)

// UserError is a parse failure whose message is fit for display.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

func userErrorf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// Form documents one command word. Forms lists them in help order.
type Form struct {
	Word    string
	Args    string
	Summary string
}

// Usage returns the full input form, e.g. "mark <task number>".
func (f Form) Usage() string {
	if f.Args == "" {
		return f.Word
	}
	return f.Word + " " + f.Args
}

var Forms = []Form{
	{"todo", "<description>", "add a task"},
	{"deadline", "<description> /by <date/time>", "add a task with a due date"},
	{"event", "<description> /from <date/time> /to <date/time>", "add a task spanning a time range"},
	{"list", "", "show all tasks"},
	{"find", "<keyword>", "show tasks whose description contains the keyword"},
	{"mark", "<task number>", "mark a task as done"},
	{"unmark", "<task number>", "mark a task as not done"},
	{"delete", "<task number>", "remove a task"},
	{"clear", "", "remove all tasks"},
	{"help", "", "show this help"},
	{"bye", "", "save and exit"},
}

var usageByWord = func() map[string]string {
	m := make(map[string]string, len(Forms))
	for _, f := range Forms {
		m[f.Word] = f.Usage()
	}
	return m
}()

func invalidFormat(word string) error {
	return userErrorf("Invalid format. Use: %s", usageByWord[word])
}

// Parse maps line to a Command. Time-only date/time tokens take their date
// from clk, except an event's /to which takes the date of its /from.
// Every failure is a *UserError.
func Parse(line string, clk clock.Clock) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, userErrorf("Please enter a command. Type help to see what I understand.")
	}

	head, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		head, rest = line[:i], strings.TrimSpace(line[i:])
	}
	word := strings.ToLower(head)

	switch word {
	case "bye", "list", "help", "clear":
		if rest != "" {
			return nil, invalidFormat(word)
		}
		switch word {
		case "bye":
			return Bye{}, nil
		case "list":
			return List{}, nil
		case "help":
			return Help{}, nil
		default:
			return Clear{}, nil
		}

	case "todo":
		if rest == "" {
			return nil, userErrorf("Todo description cannot be empty")
		}
		return Todo{Description: rest}, nil

	case "deadline":
		return parseDeadline(rest, clk)

	case "event":
		return parseEvent(rest, clk)

	case "find":
		if rest == "" {
			return nil, userErrorf("Find needs a keyword")
		}
		return Find{Keyword: rest}, nil

	case "mark", "unmark", "delete":
		i, err := parseIndex(word, rest)
		if err != nil {
			return nil, err
		}
		switch word {
		case "mark":
			return Mark{Index: i}, nil
		case "unmark":
			return Unmark{Index: i}, nil
		default:
			return Delete{Index: i}, nil
		}
	}

	return nil, userErrorf("Unknown command: %s", head)
}

func parseDeadline(rest string, clk clock.Clock) (Command, error) {
	i := strings.Index(rest, sepBy)
	if i < 0 {
		return nil, invalidFormat("deadline")
	}
	desc := strings.TrimSpace(rest[:i])
	when := strings.TrimSpace(rest[i+len(sepBy):])
	if desc == "" || when == "" {
		return nil, invalidFormat("deadline")
	}

	by, err := parseDateTime(when, clk)
	if err != nil {
		return nil, err
	}
	return Deadline{Description: desc, By: by}, nil
}

func parseEvent(rest string, clk clock.Clock) (Command, error) {
	i := strings.Index(rest, sepFrom)
	if i < 0 {
		return nil, invalidFormat("event")
	}
	desc := strings.TrimSpace(rest[:i])
	tail := rest[i+len(sepFrom):]

	j := strings.Index(tail, sepTo)
	if j < 0 {
		return nil, invalidFormat("event")
	}
	fromTok := strings.TrimSpace(tail[:j])
	toTok := strings.TrimSpace(tail[j+len(sepTo):])
	if desc == "" || fromTok == "" || toTok == "" {
		return nil, invalidFormat("event")
	}

	from, err := parseDateTime(fromTok, clk)
	if err != nil {
		return nil, err
	}
	to, err := datetime.Parse(toTok, from)
	if err != nil {
		return nil, dateTimeError(toTok, err)
	}
	return Event{Description: desc, From: from, To: to}, nil
}

func parseDateTime(tok string, clk clock.Clock) (time.Time, error) {
	t, err := datetime.Parse(tok, clk.Today())
	if err != nil {
		return t, dateTimeError(tok, err)
	}
	return t, nil
}

func dateTimeError(tok string, err error) error {
	return &UserError{
		Message: "Invalid date/time: " + tok +
			"\nUse: yyyy-MM-dd HHmm (e.g., 2026-02-15 2359)" +
			"\nOr:  HHmm (e.g., 2359)",
		Err: err,
	}
}

func parseIndex(word, arg string) (int, error) {
	if arg == "" {
		return 0, userErrorf("%s needs a task number", word)
	}
	n, err := strconv.Atoi(arg)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(arg, "-"):
		// Past any list size; the executor reports it as out of range.
		return math.MaxInt, nil
	case errors.Is(err, strconv.ErrRange):
		return 0, userErrorf("Task number must be 1 or higher")
	case err != nil:
		return 0, userErrorf("Invalid task number: %s", arg)
	case n < 1:
		return 0, userErrorf("Task number must be 1 or higher")
	}
	return n, nil
}
