// Package filestore implements service.Service over an in-memory list that
// is loaded from and saved to a single JSON or YAML file.
package filestore

import (
	"bytes"
	"errors"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"todo/internal/service"
)

const (
	// DirMode is used when the data file's directory has to be created.
	DirMode = 0755

	// FileMode is the permission of the data file.
	FileMode = 0644
)

// Store implements service.Service. It is not safe for concurrent use.
type Store struct {
	path  string
	codec Codec
	log   *slog.Logger

	tasks    []service.Task
	modified bool
	// preserve is set when the file on disk exists but could not be
	// loaded. The next Save moves it to BackupPath instead of replacing it.
	preserve bool
}

// New creates an empty store bound to path. Call Load to read the file.
// A nil logger discards log output.
func New(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{
		path:  path,
		codec: CodecFor(path),
		log:   log.With("file", path),
	}
}

// Open creates a store and loads it. On error the store is still usable
// and holds an empty list.
func Open(path string, log *slog.Logger) (*Store, error) {
	s := New(path, log)
	return s, s.Load()
}

// Load replaces the in-memory list with the file content.
// A missing file yields an empty list. Unreadable files are ErrIO and
// undecodable content is ErrParse; in both cases the list is left empty.
func (s *Store) Load() error {
	s.tasks = nil
	s.modified = false
	s.preserve = false

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("task file not found, starting empty")
			return nil
		}
		s.log.Error("failed to read task file", "error", err)
		s.preserve = true
		return service.IOFailure("read", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.log.Debug("task file empty")
		return nil
	}

	tasks, err := s.codec.Decode(data)
	if err == nil {
		err = checkTasks(tasks)
	}
	if err != nil {
		s.log.Error("failed to decode task file", "codec", s.codec.Name(), "error", err)
		s.preserve = true
		return service.Corrupt(s.path, err)
	}

	s.tasks = tasks
	s.log.Debug("loaded tasks", "count", len(tasks))
	return nil
}

// Save writes the list to a temporary file next to the data file and
// renames it into place. If Load could not read or decode an existing
// file, that file is first moved to BackupPath so its content survives.
func (s *Store) Save() error {
	data, err := s.codec.Encode(s.tasks)
	if err != nil {
		return service.IOFailure("encode", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		s.log.Error("failed to create task directory", "error", err)
		return service.IOFailure("create directory for", s.path, err)
	}

	if s.preserve {
		if err := os.Rename(s.path, s.BackupPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.log.Error("failed to back up unreadable task file", "error", err)
			return service.IOFailure("back up", s.path, err)
		}
		s.log.Warn("moved unreadable task file aside", "backup", s.BackupPath())
		s.preserve = false
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		s.log.Error("failed to create temp file", "error", err)
		return service.IOFailure("write", s.path, err)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		s.log.Error("failed to write temp file", "error", err)
		return service.IOFailure("write", s.path, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		s.log.Error("failed to rename temp file", "error", err)
		return service.IOFailure("write", s.path, err)
	}

	s.modified = false
	s.log.Debug("saved tasks", "count", len(s.tasks))
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(FileMode); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Add appends a Todo task.
func (s *Store) Add(description string) (int, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, service.Invalid("task description cannot be empty")
	}
	s.tasks = append(s.tasks, service.Task{Description: description, Status: service.Todo})
	s.modified = true

	num := len(s.tasks)
	s.log.Debug("task added", "num", num)
	return num, nil
}

// Update sets the status of task num.
func (s *Store) Update(num int, status service.Status) error {
	if err := s.check(num); err != nil {
		return err
	}
	s.tasks[num-1].Status = status
	s.modified = true
	s.log.Debug("task updated", "num", num, "status", status.Key())
	return nil
}

// Remove deletes task num.
func (s *Store) Remove(num int) (service.Task, error) {
	if err := s.check(num); err != nil {
		return service.Task{}, err
	}
	removed := s.tasks[num-1]
	s.tasks = slices.Delete(s.tasks, num-1, num)
	s.modified = true
	s.log.Debug("task removed", "num", num)
	return removed, nil
}

// List yields matching tasks with their position numbers.
func (s *Store) List(filter service.Filter) iter.Seq2[int, service.Task] {
	return func(yield func(int, service.Task) bool) {
		for i, t := range s.tasks {
			if !filter.Match(t) {
				continue
			}
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// ClearCompleted drops Done tasks.
func (s *Store) ClearCompleted() int {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t service.Task) bool {
		return t.Status == service.Done
	})
	removed := before - len(s.tasks)
	if removed > 0 {
		s.modified = true
	}
	s.log.Debug("cleared completed tasks", "count", removed)
	return removed
}

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// BackupPath returns where Save moves a task file that failed to load.
func (s *Store) BackupPath() string { return s.path + ".corrupt" }

// Path returns the data file path.
func (s *Store) Path() string { return s.path }

// Modified reports whether the list changed since the last Load or Save.
func (s *Store) Modified() bool { return s.modified }

func (s *Store) check(num int) error {
	if num < 1 || num > len(s.tasks) {
		return service.NotFound(num)
	}
	return nil
}
