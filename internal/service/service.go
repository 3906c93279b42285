package service

import "iter"

// Service defines the interface for task list operations.
// Commands only talk to the task list through this interface.
// Task numbers are 1-based positions in the full list.
type Service interface {
	// Add appends a Todo task and returns its task number.
	// The description is trimmed; an empty description is ErrInvalidCommand.
	Add(description string) (int, error)

	// Update sets the status of the task at num.
	// Returns ErrNotFound if num is out of range.
	Update(num int, status Status) error

	// Remove deletes the task at num and returns it.
	// Later tasks move up by one. Returns ErrNotFound if num is out of range.
	Remove(num int) (Task, error)

	// List yields (task number, task) pairs in insertion order for the
	// tasks matching filter. Numbers are positions in the full list, so a
	// filtered listing can skip numbers. The sequence may be ranged over
	// any number of times.
	List(filter Filter) iter.Seq2[int, Task]

	// ClearCompleted removes every Done task and returns how many were removed.
	ClearCompleted() int

	// Len returns the number of tasks.
	Len() int

	// Save writes the full list to the data file.
	// Failures are ErrIO.
	Save() error

	// Path returns the data file location.
	Path() string

	// Modified reports whether the list changed since it was last loaded
	// or saved.
	Modified() bool
}
