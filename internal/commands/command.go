// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

// Command defines the interface for task commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for error messages.
	Usage() string

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg and svc are always provided.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// SessionEnder is implemented by commands that end an interactive session.
type SessionEnder interface {
	EndsSession() bool
}

// EndsSession reports whether running c should end the interactive session.
func EndsSession(c Command) bool {
	e, ok := c.(SessionEnder)
	return ok && e.EndsSession()
}
