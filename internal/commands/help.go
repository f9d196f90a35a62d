package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"kiwi/internal/config"
	"kiwi/internal/exitcode"
	"kiwi/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "kiwi help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	cmds := DefaultRegistry.All()
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Usage()))
	}

	fmt.Fprintln(out, "Usage:")
	for _, cmd := range cmds {
		fmt.Fprintf(out, "  %-*s  %s\n", width, cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(out, commonFlagsText)
	return exitcode.Success
}

const commonFlagsText = `
Common flags:
  --config <dir>   Data directory (default: data)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Inside a session, type help to list the task commands.
`
