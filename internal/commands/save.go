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
	Register(&SaveCmd{})
	Register(&ExitCmd{})
}

// SaveCmd implements the save command.
type SaveCmd struct{}

func (c *SaveCmd) Name() string      { return "save" }
func (c *SaveCmd) Aliases() []string { return nil }
func (c *SaveCmd) Synopsis() string  { return "Save tasks to the task file" }
func (c *SaveCmd) Usage() string     { return "save" }

func (c *SaveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SaveCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 0 {
		return report(errOut, usageError(c))
	}

	if err := svc.Save(); err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "saved %d task(s) to %s\n", svc.Len(), svc.Path())
	}
	return exitcode.Success
}

// ExitCmd implements the exit command. It saves and ends the session;
// a failed save is reported but does not keep the session open.
type ExitCmd struct{}

func (c *ExitCmd) Name() string      { return "exit" }
func (c *ExitCmd) Aliases() []string { return []string{"quit"} }
func (c *ExitCmd) Synopsis() string  { return "Save and exit" }
func (c *ExitCmd) Usage() string     { return "exit" }
func (c *ExitCmd) EndsSession() bool { return true }

func (c *ExitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ExitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	code := exitcode.Success
	if err := svc.Save(); err != nil {
		code = report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "goodbye")
	}
	return code
}
