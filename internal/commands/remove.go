package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&RemoveCmd{})
	Register(&ClearCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string      { return "remove" }
func (c *RemoveCmd) Aliases() []string { return []string{"delete", "rm"} }
func (c *RemoveCmd) Synopsis() string  { return "Remove a task" }
func (c *RemoveCmd) Usage() string     { return "remove <num>" }

func (c *RemoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemoveCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		return report(errOut, usageError(c))
	}

	num, err := ParseTaskNum(args)
	if err != nil {
		return report(errOut, err)
	}

	task, err := svc.Remove(num)
	if err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "removed: %s\n", task.Description)
	}
	return exitcode.Success
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Remove all done tasks" }
func (c *ClearCmd) Usage() string     { return "clear" }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 0 {
		return report(errOut, usageError(c))
	}

	n := svc.ClearCompleted()

	if !cfg.Quiet {
		if n > 0 {
			fmt.Fprintf(out, "cleared %d completed task(s)\n", n)
		} else {
			fmt.Fprintln(out, "no completed tasks to clear")
		}
	}
	return exitcode.Success
}
