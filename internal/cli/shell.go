package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
)

const maxLineSize = 1 << 20

// Shell is the interactive read-eval loop around a Dispatcher.
// Commands run one at a time on the caller's goroutine; stdin is read on a
// helper goroutine so cancellation can end the loop.
type Shell struct {
	d           *Dispatcher
	in          io.Reader
	out, errOut io.Writer
	interactive bool
	log         *slog.Logger
}

// NewShell creates a shell. When interactive is set a prompt is printed
// before each line.
func NewShell(d *Dispatcher, in io.Reader, out, errOut io.Writer, interactive bool) *Shell {
	return &Shell{
		d:           d,
		in:          in,
		out:         out,
		errOut:      errOut,
		interactive: interactive,
		log:         d.log,
	}
}

// Run reads and executes lines until exit, end of input, or ctx is done.
// The last two save like exit. The result is the exit command's code.
func (s *Shell) Run(ctx context.Context) int {
	done := make(chan struct{})
	defer close(done)
	lines := s.readLines(done)

	for {
		if s.interactive {
			fmt.Fprint(s.out, "> ")
		}

		select {
		case <-ctx.Done():
			if s.interactive {
				fmt.Fprintln(s.out)
			}
			s.log.Info("interrupted, saving")
			return s.exit(ctx)
		case line, ok := <-lines:
			if !ok {
				if s.interactive {
					fmt.Fprintln(s.out)
				}
				return s.exit(ctx)
			}
			if code, end := s.d.Execute(ctx, line, s.out, s.errOut); end {
				return code
			}
		}
	}
}

func (s *Shell) exit(ctx context.Context) int {
	code, _ := s.d.Execute(ctx, "exit", s.out, s.errOut)
	return code
}

func (s *Shell) readLines(done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.log.Warn("reading input failed", "error", err)
		}
	}()
	return lines
}
