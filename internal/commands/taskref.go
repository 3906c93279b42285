package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"todo/internal/exitcode"
	"todo/internal/service"
)

// ErrTaskNumRequired indicates no task number was provided.
var ErrTaskNumRequired = service.Invalid("task number required")

// ParseTaskNum parses the task number in args[0].
// The number must be all digits; range is checked by the service.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumRequired
	}

	s := args[0]
	if !isAllDigits(s) {
		return 0, service.Invalid("invalid task number: %s", s)
	}
	num, err := strconv.Atoi(s)
	if err != nil {
		return 0, service.Invalid("invalid task number: %s", s)
	}
	return num, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// usageError reports a wrong argument count for cmd.
func usageError(cmd Command) error {
	return service.Invalid("usage: %s", cmd.Usage())
}

// report prints err and maps its kind to an exit code.
func report(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	if errors.Is(err, service.ErrIO) || errors.Is(err, service.ErrParse) {
		return exitcode.StorageError
	}
	return exitcode.UserError
}
