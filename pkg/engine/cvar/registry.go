// Package cvar implements the configuration-variable registry: named,
// string-valued runtime settings with persistence (archive) and
// replication (info) flags fixed at registration time.
package cvar

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/zyedidia/generic/mapset"
)

// Lookup and parse failures. All are recoverable; the registry never
// overwrites an existing variable on registration.
var (
	ErrDuplicateName   = errors.New("variable already registered")
	ErrUnknownVariable = errors.New("unknown variable")
	ErrParse           = errors.New("value does not parse")
)

// Var is one registry entry as seen from outside. Default and the two
// flags are fixed when the variable is registered.
type Var struct {
	Name    string
	Value   string
	Default string
	Archive bool // persisted to the settings file across sessions
	Info    bool // changes propagate into the serverinfo/userinfo string
}

// Registry stores configuration variables by name. Safe for concurrent
// use; the notify callback runs outside the lock.
type Registry struct {
	mu     sync.RWMutex
	vars   map[string]*Var
	dirty  mapset.Set[string] // info-flagged names changed since last drain
	notify func(name, value string)
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		vars:  make(map[string]*Var),
		dirty: mapset.New[string](),
	}
}

// register is the single insert all four registration variants funnel
// into. Caller-visible flags are fixed here and never change again.
func (r *Registry) register(name, def string, archive, info bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vars[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.vars[name] = &Var{
		Name:    name,
		Value:   def,
		Default: def,
		Archive: archive,
		Info:    info,
	}
	return nil
}

// Register adds a plain variable.
func (r *Registry) Register(name, def string) error {
	return r.register(name, def, false, false)
}

// RegisterArchive adds a variable whose value is written to the
// settings file whenever the game shuts down or writeconfig is issued.
func (r *Registry) RegisterArchive(name, def string) error {
	return r.register(name, def, true, false)
}

// RegisterUpdateInfo adds a variable whose changes must be reflected
// into the serverinfo/userinfo string.
func (r *Registry) RegisterUpdateInfo(name, def string) error {
	return r.register(name, def, false, true)
}

// RegisterArchiveUpdateInfo adds a variable that is both archived and
// reflected into the info string.
func (r *Registry) RegisterArchiveUpdateInfo(name, def string) error {
	return r.register(name, def, true, true)
}

// Has reports whether a variable with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.vars[name]
	return exists
}

// Value returns the current value as a string. String retrieval never
// fails for a registered name.
func (r *Registry) Value(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.vars[name]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}
	return v.Value, nil
}

// Default returns the registration-time default value.
func (r *Registry) Default(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.vars[name]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}
	return v.Default, nil
}

// Float64 returns the current value parsed as a float.
func (r *Registry) Float64(name string) (float64, error) {
	s, err := r.Value(name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q", ErrParse, name, s)
	}
	return f, nil
}

// Int returns the current value parsed as an integer.
func (r *Registry) Int(name string) (int, error) {
	s, err := r.Value(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q", ErrParse, name, s)
	}
	return n, nil
}

// Bool reports whether the value is numerically non-zero.
func (r *Registry) Bool(name string) (bool, error) {
	f, err := r.Float64(name)
	if err != nil {
		return false, err
	}
	return f != 0, nil
}

// Set overwrites the current value. Info-flagged variables are marked
// dirty and reported through the notify callback, if one is installed.
func (r *Registry) Set(name, value string) error {
	r.mu.Lock()
	v, exists := r.vars[name]
	if !exists {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}
	v.Value = value
	info := v.Info
	if info {
		r.dirty.Put(name)
	}
	notify := r.notify
	r.mu.Unlock()

	if info && notify != nil {
		notify(name, value)
	}
	return nil
}

// Reset restores the registration-time default, with the same
// info-change reporting as Set.
func (r *Registry) Reset(name string) error {
	r.mu.RLock()
	v, exists := r.vars[name]
	r.mu.RUnlock()
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}
	return r.Set(name, v.Default)
}

// List returns a snapshot of all variables sorted by name. The order is
// deterministic so persistence output is stable.
func (r *Registry) List() []Var {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Var, 0, len(r.vars))
	for _, v := range r.vars {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Notify installs a callback invoked after every Set of an info-flagged
// variable. The network collaborator uses this to rebuild its info
// string. The callback must not call back into the registry's Set.
func (r *Registry) Notify(fn func(name, value string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = fn
}

// TakeDirtyInfo drains and returns the names of info-flagged variables
// changed since the previous drain, sorted by name.
func (r *Registry) TakeDirtyInfo() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var names []string
	r.dirty.Each(func(name string) {
		names = append(names, name)
	})
	r.dirty = mapset.New[string]()
	sort.Strings(names)
	return names
}
