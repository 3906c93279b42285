package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/testutil"
)

func newDispatcher(svc *testutil.FakeService) *cli.Dispatcher {
	return cli.NewDispatcher(commands.DefaultRegistry, svc, &config.Config{}, nil)
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewFakeService())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd (try: help)\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsLists(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", service.Todo)
	dispatcher := newDispatcher(svc)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "1. Buy milk [TODO]\n" {
		t.Errorf("unexpected stdout %q", stdout.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewFakeService())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Commands:")) {
		t.Error("expected help output to contain 'Commands:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewFakeService())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewFakeService())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NegativeTaskNumber(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("a", service.Todo)
	dispatcher := newDispatcher(svc)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"remove", "-1"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr.String() != "error: unknown flag: -1\n" {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
	if svc.Len() != 1 {
		t.Error("task should not be removed")
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewFakeService())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--status"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -status\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_AddStatusFlagResets(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := newDispatcher(svc)
	ctx := context.Background()

	var stdout, stderr bytes.Buffer
	dispatcher.Run(ctx, []string{"add", "-s", "done", "first"}, &stdout, &stderr)
	dispatcher.Run(ctx, []string{"add", "second"}, &stdout, &stderr)

	if stderr.String() != "" {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
	tasks := svc.Tasks()
	if tasks[0].Status != service.Done {
		t.Errorf("expected first task DONE, got %s", tasks[0].Status)
	}
	// The flag from the previous call must not leak.
	if tasks[1].Status != service.Todo {
		t.Errorf("expected second task TODO, got %s", tasks[1].Status)
	}
}

func TestDispatcher_ExecuteExample(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := newDispatcher(svc)
	ctx := context.Background()

	var stdout, stderr bytes.Buffer
	lines := []string{
		`add "Buy groceries"`,
		"list",
		"update 1 in-progress",
		"list in-progress",
	}
	for _, line := range lines {
		if code, end := dispatcher.Execute(ctx, line, &stdout, &stderr); code != exitcode.Success || end {
			t.Fatalf("%q: code %d end %v, stderr %q", line, code, end, stderr.String())
		}
	}

	expected := "added task 1\n" +
		"1. Buy groceries [TODO]\n" +
		"task 1 is now IN-PROGRESS\n" +
		"1. Buy groceries [IN-PROGRESS]\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}

func TestDispatcher_ExecuteBlankLine(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewFakeService())

	var stdout, stderr bytes.Buffer
	code, end := dispatcher.Execute(context.Background(), "   \t ", &stdout, &stderr)

	if code != exitcode.Success || end {
		t.Errorf("expected no-op, got code %d end %v", code, end)
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("expected no output, got %q %q", stdout.String(), stderr.String())
	}
}

func TestDispatcher_ExecuteUnterminatedQuote(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := newDispatcher(svc)

	var stdout, stderr bytes.Buffer
	code, end := dispatcher.Execute(context.Background(), `add "Buy milk`, &stdout, &stderr)

	if code != exitcode.UserError || end {
		t.Errorf("expected user error, got code %d end %v", code, end)
	}
	if stderr.String() != "error: unterminated quote\n" {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
	if svc.Len() != 0 {
		t.Error("nothing should be added")
	}
}

func TestDispatcher_ExecuteExitEndsSession(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := newDispatcher(svc)

	for _, line := range []string{"exit", "QUIT"} {
		var stdout, stderr bytes.Buffer
		code, end := dispatcher.Execute(context.Background(), line, &stdout, &stderr)
		if code != exitcode.Success || !end {
			t.Errorf("%s: expected session end, got code %d end %v", line, code, end)
		}
		if !strings.HasSuffix(stdout.String(), "goodbye\n") {
			t.Errorf("%s: unexpected stdout %q", line, stdout.String())
		}
	}
	if svc.Saves != 2 {
		t.Errorf("expected 2 saves, got %d", svc.Saves)
	}
}

func TestDispatcher_HelpFlag(t *testing.T) {
	dispatcher := newDispatcher(testutil.NewFakeService())

	for _, flagArg := range []string{"--help", "-h"} {
		var stdout, stderr bytes.Buffer
		code := dispatcher.Run(context.Background(), []string{"list", flagArg}, &stdout, &stderr)

		if code != exitcode.Success {
			t.Errorf("%s: expected exit code %d, got %d", flagArg, exitcode.Success, code)
		}
		if stderr.String() != "" {
			t.Errorf("%s: expected no stderr, got %q", flagArg, stderr.String())
		}
		if stdout.String() != "usage: list [status]\n" {
			t.Errorf("%s: unexpected stdout %q", flagArg, stdout.String())
		}
	}
}

func TestDispatcher_AddDashDescription(t *testing.T) {
	svc := testutil.NewFakeService()
	dispatcher := newDispatcher(svc)

	var stdout, stderr bytes.Buffer
	code, _ := dispatcher.Execute(context.Background(), "add -- -5 degrees outside", &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr.String())
	}
	if got := svc.Tasks()[0].Description; got != "-5 degrees outside" {
		t.Errorf("expected description '-5 degrees outside', got %q", got)
	}
}
