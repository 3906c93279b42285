// Package testutil provides testing utilities.
package testutil

import (
	"errors"
	"iter"
	"strings"

	"todo/internal/service"
)

// ErrDiskFull is a convenient injected save failure.
var ErrDiskFull = errors.New("no space left on device")

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	tasks    []service.Task
	modified bool

	// Saves counts successful Save calls.
	Saves int

	// Error injection for testing
	AddErr    error
	UpdateErr error
	RemoveErr error
	SaveErr   error

	// FilePath is returned by Path.
	FilePath string
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{FilePath: "tasks.json"}
}

// AddTask seeds a task without marking the service modified.
func (f *FakeService) AddTask(description string, status service.Status) {
	f.tasks = append(f.tasks, service.Task{Description: description, Status: status})
}

// Tasks returns a copy of the current list.
func (f *FakeService) Tasks() []service.Task {
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Add implements service.Service.
func (f *FakeService) Add(description string) (int, error) {
	if f.AddErr != nil {
		return 0, f.AddErr
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, service.Invalid("task description cannot be empty")
	}
	f.tasks = append(f.tasks, service.Task{Description: description, Status: service.Todo})
	f.modified = true
	return len(f.tasks), nil
}

// Update implements service.Service.
func (f *FakeService) Update(num int, status service.Status) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	if num < 1 || num > len(f.tasks) {
		return service.NotFound(num)
	}
	f.tasks[num-1].Status = status
	f.modified = true
	return nil
}

// Remove implements service.Service.
func (f *FakeService) Remove(num int) (service.Task, error) {
	if f.RemoveErr != nil {
		return service.Task{}, f.RemoveErr
	}
	if num < 1 || num > len(f.tasks) {
		return service.Task{}, service.NotFound(num)
	}
	t := f.tasks[num-1]
	f.tasks = append(f.tasks[:num-1], f.tasks[num:]...)
	f.modified = true
	return t, nil
}

// List implements service.Service.
func (f *FakeService) List(filter service.Filter) iter.Seq2[int, service.Task] {
	return func(yield func(int, service.Task) bool) {
		for i, t := range f.tasks {
			if filter.Match(t) && !yield(i+1, t) {
				return
			}
		}
	}
}

// ClearCompleted implements service.Service.
func (f *FakeService) ClearCompleted() int {
	var kept []service.Task
	for _, t := range f.tasks {
		if t.Status != service.Done {
			kept = append(kept, t)
		}
	}
	removed := len(f.tasks) - len(kept)
	f.tasks = kept
	if removed > 0 {
		f.modified = true
	}
	return removed
}

// Len implements service.Service.
func (f *FakeService) Len() int { return len(f.tasks) }

// Save implements service.Service.
func (f *FakeService) Save() error {
	if f.SaveErr != nil {
		return service.IOFailure("write", f.FilePath, f.SaveErr)
	}
	f.Saves++
	f.modified = false
	return nil
}

// Path implements service.Service.
func (f *FakeService) Path() string { return f.FilePath }

// Modified implements service.Service.
func (f *FakeService) Modified() bool { return f.modified }
