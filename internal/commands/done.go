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
	Register(&UpdateCmd{})
	Register(&DoneCmd{})
}

// UpdateCmd implements the update command.
type UpdateCmd struct{}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return []string{"status"} }
func (c *UpdateCmd) Synopsis() string  { return "Set a task's status" }
func (c *UpdateCmd) Usage() string     { return "update <num> <status>" }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		return report(errOut, usageError(c))
	}

	num, err := ParseTaskNum(args)
	if err != nil {
		return report(errOut, err)
	}
	status, err := service.ParseStatus(args[1])
	if err != nil {
		return report(errOut, err)
	}

	return setStatus(cfg, svc, num, status, out, errOut)
}

// DoneCmd implements the done command, shorthand for update <num> done.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task done" }
func (c *DoneCmd) Usage() string     { return "done <num>" }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		return report(errOut, usageError(c))
	}

	num, err := ParseTaskNum(args)
	if err != nil {
		return report(errOut, err)
	}

	return setStatus(cfg, svc, num, service.Done, out, errOut)
}

// setStatus is the shared implementation for update and done.
func setStatus(cfg *config.Config, svc service.Service, num int, status service.Status, out, errOut io.Writer) int {
	if err := svc.Update(num, status); err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "task %d is now %s\n", num, status)
	}
	return exitcode.Success
}
