// Package netinfo maintains the serverinfo/userinfo string exchanged
// with peers, rebuilt whenever an info-flagged cvar changes. The actual
// broadcast belongs to the network layer.
package netinfo

import (
	"strings"
	"sync"

	"voidrunner/pkg/engine/cvar"
)

// InfoString builds the backslash-delimited key/value string from the
// info-flagged variables, sorted by name.
func InfoString(reg *cvar.Registry) string {
	var b strings.Builder
	for _, v := range reg.List() {
		if !v.Info {
			continue
		}
		b.WriteByte('\\')
		b.WriteString(v.Name)
		b.WriteByte('\\')
		b.WriteString(v.Value)
	}
	return b.String()
}

// Tracker caches the info string and rebuilds it lazily after the
// registry reports a change to any info-flagged variable.
type Tracker struct {
	mu     sync.Mutex
	reg    *cvar.Registry
	cached string
	dirty  bool
}

// NewTracker wires a tracker into the registry's change notification.
func NewTracker(reg *cvar.Registry) *Tracker {
	t := &Tracker{reg: reg, dirty: true}
	reg.Notify(func(string, string) {
		t.mu.Lock()
		t.dirty = true
		t.mu.Unlock()
	})
	return t
}

// Dirty reports whether a rebuild is pending.
func (t *Tracker) Dirty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dirty
}

// String returns the current info string, rebuilding it if needed.
func (t *Tracker) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.dirty {
		t.cached = InfoString(t.reg)
		t.dirty = false
	}
	return t.cached
}
