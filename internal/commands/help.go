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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Show this help" }
func (c *HelpCmd) Usage() string     { return "help" }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-43s%s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `
Statuses: todo, in-progress, done
Aliases: ls (list), status (update), delete and rm (remove), quit (exit)

Examples:
  add Buy groceries
  add -- -5 degrees outside   (-- ends flags)
  list done
  update 1 in-progress
  remove 2

Run "todo" for the interactive prompt or "todo <command> [args]" for one command.

Global flags:
  --file <path>    Task file (env TODO_FILE; .yaml/.yml for YAML)
  --config <file>  Config file (default ~/.config/todo/config.yaml)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --no-color       Disable coloured status tags
`
