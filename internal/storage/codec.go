// Package storage reads and writes the pipe-delimited data file.
//
// One task per line, fields separated by " | ":
//
//	T | 0 | read book
//	D | 1 | submit report | 2026-02-15 2359
//	E | 0 | team sync | 2026-02-12 1400 to 1600
//
// An event whose end falls on a later day writes the full end date after
// "to"; readers accept either form.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"kiwi/internal/datetime"
	"kiwi/internal/task"
)

const (
	fieldSep = " | "
	rangeSep = " to "
)

// errSkip marks a line Decode drops.
var errSkip = errors.New("skip")

func skipf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errSkip}, args...)...)
}

// EncodeLine renders t as a single data-file line without a newline.
func EncodeLine(t task.Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{t.Kind.Tag(), done, t.Description}

	switch t.Kind {
	case task.KindDeadline:
		fields = append(fields, datetime.Storage(t.By))
	case task.KindEvent:
		end := datetime.Clock(t.To)
		if datetime.StorageDate(t.To) != datetime.StorageDate(t.From) {
			end = datetime.Storage(t.To)
		}
		fields = append(fields, datetime.Storage(t.From)+rangeSep+end)
	}
	return strings.Join(fields, fieldSep)
}

// DecodeLine parses one data-file line. Lines that cannot be read back
// as a valid task return an error.
func DecodeLine(line string) (task.Task, error) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return task.Task{}, skipf("want at least 3 fields, got %d", len(parts))
	}

	var (
		t   task.Task
		err error
	)
	desc := parts[2]

	switch strings.ToUpper(parts[0]) {
	case "T":
		t, err = task.NewTodo(desc)

	case "D":
		if len(parts) < 4 {
			return task.Task{}, skipf("deadline without date")
		}
		by, perr := datetime.ParseFull(parts[3])
		if perr != nil {
			return task.Task{}, skipf("%v", perr)
		}
		t, err = task.NewDeadline(desc, by)

	case "E":
		if len(parts) < 4 {
			return task.Task{}, skipf("event without range")
		}
		fromTok, toTok, ok := strings.Cut(parts[3], rangeSep)
		if !ok {
			return task.Task{}, skipf("event range %q has no %q", parts[3], strings.TrimSpace(rangeSep))
		}
		from, perr := datetime.ParseFull(strings.TrimSpace(fromTok))
		if perr != nil {
			return task.Task{}, skipf("%v", perr)
		}
		to, perr := datetime.Parse(strings.TrimSpace(toTok), from)
		if perr != nil {
			return task.Task{}, skipf("%v", perr)
		}
		t, err = task.NewEvent(desc, from, to)

	default:
		return task.Task{}, skipf("unknown type %q", parts[0])
	}
	if err != nil {
		return task.Task{}, skipf("%v", err)
	}

	if parts[1] == "1" {
		t.Mark()
	}
	return t, nil
}

// Encode writes tasks one per line, LF terminated.
func Encode(w io.Writer, tasks []task.Task) error {
	bw := bufio.NewWriter(w)
	for _, t := range tasks {
		if _, err := bw.WriteString(EncodeLine(t) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads tasks from r, dropping lines DecodeLine rejects. Each dropped
// line is logged with its line number. The returned count is the number of
// dropped lines. Lines of any length are accepted. Only read errors are
// returned.
func Decode(r io.Reader, logger *log.Logger) ([]task.Task, int, error) {
	var (
		tasks   []task.Task
		skipped int
		lineNo  int
	)
	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			lineNo++
			line := trimEOL(raw)
			if strings.TrimSpace(line) != "" {
				t, derr := DecodeLine(line)
				if derr != nil {
					skipped++
					logger.Printf("skipping line %d: %v", lineNo, derr)
				} else {
					tasks = append(tasks, t)
				}
			}
		}
		if errors.Is(err, io.EOF) {
			return tasks, skipped, nil
		}
		if err != nil {
			return tasks, skipped, err
		}
	}
}

// trimEOL strips a trailing LF or CRLF.
func trimEOL(s string) string {
	return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
}
