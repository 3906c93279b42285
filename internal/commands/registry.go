package commands

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps command names and aliases to commands. Lookups ignore case.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Command // lowercased name or alias
	sorted []Command          // one entry per command, ordered by name
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Command),
	}
}

// Register adds a command under its name and aliases.
// Nothing is registered if any of them is already taken.
func (r *Registry) Register(c Command) error {
	keys := append([]string{c.Name()}, c.Aliases()...)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, key := range keys {
		key = strings.ToLower(key)
		if _, taken := r.byName[key]; taken {
			return fmt.Errorf("command name already registered: %s", key)
		}
		keys[i] = key
	}
	for _, key := range keys {
		r.byName[key] = c
	}

	i, _ := slices.BinarySearchFunc(r.sorted, c.Name(), func(e Command, name string) int {
		return strings.Compare(e.Name(), name)
	})
	r.sorted = slices.Insert(r.sorted, i, c)
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byName[strings.ToLower(name)]
	return cmd, ok
}

// All returns every command sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.sorted)
}

// DefaultRegistry holds the commands registered by this package's init functions.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry. It panics on a name clash.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
