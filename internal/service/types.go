// Package service defines the storage-agnostic interface for task operations.
package service

import (
	"fmt"
	"strings"
)

// Status is the progress state of a task.
type Status int

const (
	// Todo is the status of a newly added task.
	Todo Status = iota
	// InProgress marks a task that has been started.
	InProgress
	// Done marks a completed task. Done tasks are removed by clear.
	Done
)

// StatusNames lists the accepted spellings, for error and help messages.
const StatusNames = "todo, in-progress, done"

// ParseStatus parses a status name. Matching is case-insensitive and
// accepts the aliases to-do, inprogress and completed.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "to-do":
		return Todo, nil
	case "in-progress", "inprogress":
		return InProgress, nil
	case "done", "completed":
		return Done, nil
	}
	return Todo, Invalid("status %q not recognized (use: %s)", s, StatusNames)
}

// String returns the display form: TODO, IN-PROGRESS or DONE.
func (s Status) String() string {
	switch s {
	case Todo:
		return "TODO"
	case InProgress:
		return "IN-PROGRESS"
	case Done:
		return "DONE"
	}
	return "UNKNOWN"
}

// Key returns the lowercase form written to the data file.
func (s Status) Key() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Done:
		return "done"
	}
	return "todo"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return fmt.Errorf("unknown status %q", text)
	}
	*s = parsed
	return nil
}

// Task is a single work item. Tasks have no stable identifier; they are
// addressed by their 1-based position in the list.
type Task struct {
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
}

// Filter restricts a listing to one status. The zero value matches every task.
type Filter struct {
	Status Status
	Active bool
}

// AllTasks is the filter that matches every task.
var AllTasks = Filter{}

// Only returns a filter matching tasks with the given status.
func Only(s Status) Filter {
	return Filter{Status: s, Active: true}
}

// Match reports whether t passes the filter.
func (f Filter) Match(t Task) bool {
	return !f.Active || t.Status == f.Status
}
