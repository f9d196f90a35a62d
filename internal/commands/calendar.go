package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"kiwi/internal/config"
	"kiwi/internal/exitcode"
	"kiwi/internal/service"
)

func init() {
	Register(&CalendarCmd{})
}

// CalendarCmd mirrors deadlines and events into a Google Calendar.
// Todos have no time and are skipped.
type CalendarCmd struct {
	calendarID string

	// Location interprets the naive task times; nil means time.Local.
	Location *time.Location
}

// SetCalendarID sets the target calendar (for testing).
func (c *CalendarCmd) SetCalendarID(id string) {
	c.calendarID = id
}

func (c *CalendarCmd) Name() string      { return "calendar" }
func (c *CalendarCmd) Aliases() []string { return []string{"cal"} }
func (c *CalendarCmd) Synopsis() string  { return "Copy deadlines and events to Google Calendar" }
func (c *CalendarCmd) Usage() string     { return "kiwi calendar [common flags] [--calendar <id>]" }
func (c *CalendarCmd) NeedsAuth() bool   { return true }

func (c *CalendarCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.calendarID, "calendar", "", "")
}

func (c *CalendarCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	logger := cfg.Logger(errOut)

	settings, err := cfg.Settings()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	calID := c.calendarID
	if calID == "" {
		calID = settings.Calendar
	}
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}

	local, code, ok := loadLocal(cfg, logger, errOut)
	if !ok {
		return code
	}

	synced := 0
	for _, t := range local.Tasks() {
		ev, timed := calendarEvent(t, settings.EventMinutes, loc)
		if !timed {
			continue
		}

		prev, err := svc.FindEvent(ctx, calID, ev.Key)
		switch {
		case err == nil:
			ev.ID = prev.ID
			err = svc.UpdateEvent(ctx, calID, ev)
		case errors.Is(err, service.ErrNotFound):
			err = svc.CreateEvent(ctx, calID, ev)
		}
		if err != nil {
			return remoteFailure(errOut, err)
		}
		logger.Printf("synced %q to %s", ev.Summary, calID)
		synced++
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "synced %d events\n", synced)
	}
	return exitcode.Success
}
