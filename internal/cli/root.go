package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"todo/internal/backend/filestore"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/output"
)

// exitError carries an exit code out of cobra's RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Execute runs the todo program with args (excluding the program name)
// and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := exitcode.Success
	root := newRootCmd(stdin, stdout, stderr, &code)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return exitcode.UserError
	}
	return code
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, code *int) *cobra.Command {
	v := config.NewViper()

	var (
		configFile string
		noColor    bool
	)

	root := &cobra.Command{
		Use:   "todo [command] [args...]",
		Short: "A small task tracker",
		Long: `todo keeps a list of tasks in a local file.

Run without arguments for an interactive prompt, or pass one command
(add, list, update, done, remove, clear, save, help) to run it and exit.`,
		Version:       commands.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return &exitError{code: exitcode.ConfigError, err: err}
			}
			if noColor || !output.IsTerminal(stdout) {
				cfg.Color = false
			}

			logger, err := logging.New(logging.Options{
				File:   cfg.Log.File,
				Level:  cfg.Log.Level,
				Debug:  cfg.Debug,
				Stderr: stderr,
			})
			if err != nil {
				return &exitError{code: exitcode.ConfigError, err: err}
			}
			defer logger.Close()

			*code = run(cmd.Context(), cfg, logger, args, stdin, stdout, stderr)
			return nil
		},
	}
	root.SetVersionTemplate("todo {{.Version}}\n")
	// Everything after the first word belongs to the command.
	root.Flags().SetInterspersed(false)

	pf := root.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/todo/config.yaml)")
	pf.StringP("file", "f", "", "task file (env "+config.EnvFile+")")
	pf.BoolP("quiet", "q", false, "suppress informational output")
	pf.Bool("debug", false, "print debug logs to stderr")
	pf.BoolVar(&noColor, "no-color", false, "disable coloured status tags")

	for _, key := range []string{"file", "quiet", "debug"} {
		_ = v.BindPFlag(key, pf.Lookup(key))
	}

	return root
}

// run loads the task file and either runs one command or the shell.
func run(ctx context.Context, cfg *config.Config, logger *logging.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	store := filestore.New(cfg.File, logger.Logger)
	if err := store.Load(); err != nil {
		logger.Warn("load failed, starting empty", "path", cfg.File, "error", err)
		fmt.Fprintf(stderr, "warning: %v (starting with an empty list)\n", err)
	}

	d := NewDispatcher(commands.DefaultRegistry, store, cfg, logger.Logger)

	if len(args) > 0 {
		code := d.Run(ctx, args, stdout, stderr)
		if store.Modified() {
			if err := store.Save(); err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				if code == exitcode.Success {
					code = exitcode.StorageError
				}
			}
		}
		return code
	}

	interactive := output.IsTerminal(stdin) && !cfg.Quiet
	if interactive {
		fmt.Fprintf(stdout, "todo %s (type help for commands)\n", commands.Version)
		fmt.Fprintf(stdout, "loaded %d task(s) from %s\n", store.Len(), store.Path())
	}
	return NewShell(d, stdin, stdout, stderr, interactive).Run(ctx)
}
