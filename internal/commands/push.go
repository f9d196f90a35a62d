package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"kiwi/internal/config"
	"kiwi/internal/exitcode"
	"kiwi/internal/service"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd mirrors the data file into a Google Tasks list.
type PushCmd struct {
	listTitle string
}

// SetListTitle sets the target list title (for testing).
func (c *PushCmd) SetListTitle(title string) {
	c.listTitle = title
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Copy tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "kiwi push [common flags] [--list <title>]" }
func (c *PushCmd) NeedsAuth() bool   { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listTitle, "list", "", "")
}

func (c *PushCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
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
	title := c.listTitle
	if title == "" {
		title = settings.TaskList
	}

	local, code, ok := loadLocal(cfg, logger, errOut)
	if !ok {
		return code
	}

	list, err := svc.ResolveList(ctx, title)
	if errors.Is(err, service.ErrNotFound) {
		logger.Printf("task list %q not found, creating it", title)
		list, err = svc.CreateList(ctx, title)
	}
	if err != nil {
		return remoteFailure(errOut, err)
	}

	existing, err := svc.ListTasks(ctx, list.ID)
	if err != nil {
		return remoteFailure(errOut, err)
	}
	byTitle := make(map[string]service.Task, len(existing))
	for _, rt := range existing {
		key := strings.ToLower(strings.TrimSpace(rt.Title))
		if _, seen := byTitle[key]; !seen {
			byTitle[key] = rt
		}
	}

	for _, t := range local.Tasks() {
		rt := remoteTask(t)
		if prev, found := byTitle[strings.ToLower(rt.Title)]; found {
			rt.ID = prev.ID
			err = svc.UpdateTask(ctx, list.ID, rt)
		} else {
			err = svc.CreateTask(ctx, list.ID, rt)
		}
		if err != nil {
			return remoteFailure(errOut, err)
		}
		logger.Printf("pushed %q", rt.Title)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "pushed %d tasks\n", local.Len())
	}
	return exitcode.Success
}
