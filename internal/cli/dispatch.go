package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

// Dispatcher handles command parsing and dispatch against one task store.
type Dispatcher struct {
	registry *commands.Registry
	svc      service.Service
	cfg      *config.Config
	log      *slog.Logger
}

// NewDispatcher creates a new dispatcher with the given registry and store.
// A nil logger discards.
func NewDispatcher(registry *commands.Registry, svc service.Service, cfg *config.Config, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		registry: registry,
		svc:      svc,
		cfg:      cfg,
		log:      log,
	}
}

// Run dispatches a pre-split argument list and returns the exit code.
// No args lists every task.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		args = []string{"list"}
	}
	code, _ := d.dispatch(ctx, args[0], args[1:], out, errOut)
	return code
}

// Execute runs one shell line. It reports whether the line ended the session.
// Blank lines are a no-op.
func (d *Dispatcher) Execute(ctx context.Context, line string, out, errOut io.Writer) (code int, end bool) {
	words, err := SplitLine(line)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError, false
	}
	if len(words) == 0 {
		return exitcode.Success, false
	}
	return d.dispatch(ctx, words[0], words[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) (int, bool) {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		d.log.Debug("unknown command", "name", cmdName)
		fmt.Fprintf(errOut, "error: unknown command: %s (try: help)\n", cmdName)
		return exitcode.UserError, false
	}

	code := d.dispatchCommand(ctx, cmd, args, out, errOut)
	d.log.Debug("command finished", "command", cmd.Name(), "code", code, "tasks", d.svc.Len())
	return code, commands.EndsSession(cmd)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(out, "usage: %s\n", cmd.Usage())
			return exitcode.Success
		}

		errStr := err.Error()

		// Check for missing flag value
		if strings.HasPrefix(errStr, "flag needs an argument:") {
			flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
			return exitcode.UserError
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	return cmd.Run(ctx, d.cfg, d.svc, fs.Args(), out, errOut)
}
