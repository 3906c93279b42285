package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	status string
}

// SetStatus sets the initial status (for testing).
func (c *AddCmd) SetStatus(status string) {
	c.status = status
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "add [--status <status>] <description...>" }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return report(errOut, service.Invalid("task description required"))
	}

	status := service.Todo
	if c.status != "" {
		var err error
		if status, err = service.ParseStatus(c.status); err != nil {
			return report(errOut, err)
		}
	}

	num, err := svc.Add(description)
	if err != nil {
		return report(errOut, err)
	}
	if status != service.Todo {
		if err := svc.Update(num, status); err != nil {
			return report(errOut, err)
		}
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "added task %d\n", num)
	}
	return exitcode.Success
}
