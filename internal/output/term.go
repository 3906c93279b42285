package output

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether v is an *os.File attached to a terminal.
// Buffers and pipes are never terminals.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
