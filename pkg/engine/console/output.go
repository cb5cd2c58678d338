package console

import "sync"

// Printer accepts a line of console output. The console writes every
// user-visible message through this interface so frontends decide how
// lines reach the screen.
type Printer interface {
	Println(line string)
}

// PrinterFunc adapts a plain function to the Printer interface.
type PrinterFunc func(line string)

// Println calls f(line).
func (f PrinterFunc) Println(line string) {
	f(line)
}

// Tee returns a Printer that forwards each line to every given printer.
func Tee(printers ...Printer) Printer {
	return PrinterFunc(func(line string) {
		for _, p := range printers {
			p.Println(line)
		}
	})
}

// Log is a bounded scrollback of console output lines. Oldest lines are
// dropped once the capacity is exceeded.
type Log struct {
	mu    sync.RWMutex
	lines []string
	max   int
}

// NewLog creates a log keeping at most max lines. A non-positive max
// falls back to 50, matching the on-screen console scrollback.
func NewLog(max int) *Log {
	if max <= 0 {
		max = 50
	}
	return &Log{max: max}
}

// Println appends a line, evicting the oldest line when full.
func (l *Log) Println(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, line)
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
}

// Lines returns a copy of the current log content, oldest first.
func (l *Log) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Clear discards all logged lines.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}
