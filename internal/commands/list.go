package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `list` (every task) and `list <status>`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks, optionally by status" }
func (c *ListCmd) Usage() string     { return "list [status]" }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	filter := service.AllTasks
	switch len(args) {
	case 0:
	case 1:
		status, err := service.ParseStatus(args[0])
		if err != nil {
			return report(errOut, err)
		}
		filter = service.Only(status)
	default:
		return report(errOut, usageError(c))
	}

	found := false
	for num, task := range svc.List(filter) {
		output.FormatTask(out, num, task, cfg.Color)
		found = true
	}

	if !found && !cfg.Quiet {
		if filter.Active {
			fmt.Fprintf(out, "no tasks with status %s\n", filter.Status)
		} else {
			fmt.Fprintln(out, "no tasks yet (add one with: add <description>)")
		}
	}

	return exitcode.Success
}
