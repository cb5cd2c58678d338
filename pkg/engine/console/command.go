package console

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registration and dispatch failures. Both are recoverable; the registry
// never overwrites an existing handler.
var (
	ErrDuplicateName  = errors.New("command already registered")
	ErrUnknownCommand = errors.New("unknown command")
)

// Handler executes a console command. args holds the whitespace-split
// tokens following the command name, in order, possibly empty. Handlers
// communicate results only through side effects.
type Handler func(args []string)

// CmdRegistry stores console commands by name. Names are case-sensitive
// and unique. Safe for concurrent use; handlers run outside the lock so
// they may call back into the registry.
type CmdRegistry struct {
	mu   sync.RWMutex
	cmds map[string]Handler
}

// NewCmdRegistry creates an empty command registry.
func NewCmdRegistry() *CmdRegistry {
	return &CmdRegistry{
		cmds: make(map[string]Handler),
	}
}

// Register adds a new command. Returns ErrDuplicateName if a command
// with this name already exists; the existing handler is left in place.
func (r *CmdRegistry) Register(name string, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cmds[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.cmds[name] = h
	return nil
}

// Exec invokes the named command synchronously with args. Returns
// ErrUnknownCommand if no such command exists.
func (r *CmdRegistry) Exec(name string, args []string) error {
	r.mu.RLock()
	h, exists := r.cmds[name]
	r.mu.RUnlock()

	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	h(args)
	return nil
}

// Has reports whether a command with the given name is registered.
func (r *CmdRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.cmds[name]
	return exists
}

// Names returns all registered command names sorted alphabetically.
func (r *CmdRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
