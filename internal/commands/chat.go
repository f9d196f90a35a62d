package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"kiwi/internal/clock"
	"kiwi/internal/config"
	"kiwi/internal/exitcode"
	"kiwi/internal/parser"
	"kiwi/internal/service"
	"kiwi/internal/session"
	"kiwi/internal/storage"
	"kiwi/internal/task"
)

const (
	replacePrompt = "Replace with new task? [y/n]: "
	clearPrompt   = "Are you sure you want to delete all tasks? [y/n]: "
	clearCanceled = "Clear cancelled."
)

func init() {
	Register(&ChatCmd{})
}

// ChatCmd runs the interactive session on in and out.
type ChatCmd struct {
	// Clock supplies today's date; nil means the system clock.
	Clock clock.Clock
}

func (c *ChatCmd) Name() string      { return "chat" }
func (c *ChatCmd) Aliases() []string { return nil }
func (c *ChatCmd) Synopsis() string  { return "Start an interactive session (default)" }
func (c *ChatCmd) Usage() string     { return "kiwi [chat] [common flags]" }
func (c *ChatCmd) NeedsAuth() bool   { return false }

func (c *ChatCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ChatCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	clk := c.Clock
	if clk == nil {
		clk = clock.System{}
	}
	logger := cfg.Logger(errOut)

	store := storage.New(cfg.DataPath(), logger)
	var saver session.Saver = store
	list, err := store.Load()
	if err != nil {
		fmt.Fprintf(errOut, "warning: %v; starting with an empty list, changes will not be saved\n", err)
		list = task.NewList()
		saver = keepFile{path: store.Path(), cause: err}
	}
	s := session.New(list, saver, clk, logger)

	if !cfg.Quiet {
		fmt.Fprintln(out, session.Welcome)
	}
	fmt.Fprintln(out, s.Execute(parser.List{}).Text)

	lines := readLines(ctx, in)
	for {
		line, ok := lines.next(ctx)
		if !ok {
			break
		}
		cmd, err := s.Parse(line)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			continue
		}

		if _, ok := cmd.(parser.Clear); ok && s.List().Len() > 0 {
			if !confirm(ctx, lines, out, clearPrompt) {
				fmt.Fprintln(out, clearCanceled)
				continue
			}
		}

		res := s.Execute(cmd)
		fmt.Fprintln(out, res.Text)

		var dup *session.DuplicateError
		if errors.As(res.Err, &dup) && confirm(ctx, lines, out, replacePrompt) {
			fmt.Fprintln(out, s.Replace(dup).Text)
		}
		if res.Stop {
			return exitcode.Success
		}
	}
	readErr := lines.Err()
	if readErr != nil {
		fmt.Fprintf(errOut, "error: reading input: %v\n", readErr)
	}

	// End of input, cancellation and read failures all end the session like bye.
	fmt.Fprintln(out, s.Execute(parser.Bye{}).Text)
	if readErr != nil {
		return exitcode.IOError
	}
	return exitcode.Success
}

// keepFile stands in for the store when the data file could not be read,
// so the session never overwrites it.
type keepFile struct {
	path  string
	cause error
}

func (k keepFile) Save(*task.List) error {
	return fmt.Errorf("not overwriting unreadable %s: %w", k.path, k.cause)
}

// confirm prints prompt and reads one answer. Only "y" (any case) agrees.
func confirm(ctx context.Context, lines *lineReader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	answer, ok := lines.next(ctx)
	if !ok {
		fmt.Fprintln(out)
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// lineReader scans input on its own goroutine so a cancelled context
// unblocks the session while it waits for a line.
type lineReader struct {
	lines  chan string
	err    error
	closed bool
}

func readLines(ctx context.Context, in io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		defer close(lr.lines)
		br := bufio.NewReader(in)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				select {
				case lr.lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					lr.err = err
				}
				return
			}
		}
	}()
	return lr
}

// next returns the next line, or false at end of input or cancellation.
func (lr *lineReader) next(ctx context.Context) (string, bool) {
	if lr.closed {
		return "", false
	}
	select {
	case line, ok := <-lr.lines:
		if !ok {
			lr.closed = true
		}
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

// Err returns the read error, if any, once input has ended.
func (lr *lineReader) Err() error {
	if !lr.closed {
		return nil
	}
	return lr.err
}
