package commands

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"kiwi/internal/config"
	"kiwi/internal/datetime"
	"kiwi/internal/exitcode"
	"kiwi/internal/output"
	"kiwi/internal/service"
	"kiwi/internal/storage"
	"kiwi/internal/task"
)

// loadLocal reads the data file for the remote sync commands. On failure it
// reports to errOut and returns the exit code.
func loadLocal(cfg *config.Config, logger *log.Logger, errOut io.Writer) (*task.List, int, bool) {
	list, err := storage.New(cfg.DataPath(), logger).Load()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.IOError, false
	}
	return list, exitcode.Success, true
}

// remoteFailure reports a service error and maps it to an exit code.
func remoteFailure(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, service.ErrAuth):
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	case errors.Is(err, service.ErrAmbiguous):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// remoteTask maps a local task onto a Google Tasks item.
func remoteTask(t task.Task) service.Task {
	rt := service.Task{
		Title:  output.SingleLine(t.Description),
		Notes:  t.String(),
		Status: service.StatusNeedsAction,
	}
	if t.Done {
		rt.Status = service.StatusCompleted
	}

	var due time.Time
	switch t.Kind {
	case task.KindDeadline:
		due = t.By
	case task.KindEvent:
		due = t.From
	}
	if !due.IsZero() {
		y, m, d := due.Date()
		rt.Due = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
	}
	return rt
}

// calendarEvent maps a deadline or event onto a timed calendar event in loc.
// A deadline becomes a block of minutes starting at its due time.
func calendarEvent(t task.Task, minutes int, loc *time.Location) (service.Event, bool) {
	ev := service.Event{
		Key:         service.EventKey(t.Description),
		Summary:     output.SingleLine(t.Description),
		Description: t.String(),
	}
	switch t.Kind {
	case task.KindDeadline:
		ev.Start = datetime.In(t.By, loc)
		ev.End = ev.Start.Add(time.Duration(minutes) * time.Minute)
	case task.KindEvent:
		ev.Start = datetime.In(t.From, loc)
		ev.End = datetime.In(t.To, loc)
	default:
		return service.Event{}, false
	}
	return ev, true
}
