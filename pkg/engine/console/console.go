package console

import (
	"errors"
	"fmt"
	"strings"

	"voidrunner/pkg/engine/input"
)

// Cvars is the narrow view of the variable registry the console needs
// for name fallthrough: a line whose first token matches no command but
// does match a variable prints or sets that variable.
type Cvars interface {
	Has(name string) bool
	Value(name string) (string, error)
	Set(name, value string) error
}

// Console owns the live edit buffer and the submitted-line history, and
// dispatches committed lines through the command registry. One console
// exists per process, owned by the host for its whole lifetime.
type Console struct {
	input *LineEditor
	hist  *History
	cmds  *CmdRegistry
	cvars Cvars
	out   Printer
}

// New creates a console dispatching to cmds, with cvar fallthrough
// against cvars and output written to out. cvars and out may be nil.
func New(cmds *CmdRegistry, cvars Cvars, out Printer) *Console {
	return &Console{
		input: NewLineEditor(),
		hist:  NewHistory(),
		cmds:  cmds,
		cvars: cvars,
		out:   out,
	}
}

// Line returns the current edit buffer content and cursor position,
// for frontends drawing the input line.
func (c *Console) Line() (string, int) {
	return c.input.String(), c.input.Cursor()
}

// History returns the console's submitted-line history.
func (c *Console) History() *History {
	return c.hist
}

// SetPrinter replaces the output sink. Frontends use this to tee output
// to their own display on top of the host's log.
func (c *Console) SetPrinter(out Printer) {
	c.out = out
}

// Println writes a line to the console output sink.
func (c *Console) Println(line string) {
	if c.out != nil {
		c.out.Println(line)
	}
}

// Printf formats a line and writes it to the console output sink.
func (c *Console) Printf(format string, args ...any) {
	c.Println(fmt.Sprintf(format, args...))
}

// SendChar feeds one typed character into the console. Carriage return
// commits the current line, backspace and delete edit it, tab is
// reserved for completion, everything else is inserted at the cursor.
func (c *Console) SendChar(ch rune) {
	switch ch {
	case input.CharReturn:
		c.commit()

	case input.CharBackspace:
		c.input.Backspace()

	case input.CharDelete:
		c.input.Delete()

	case input.CharTab:
		// completion not implemented

	default:
		c.input.Insert(ch)
	}
}

// SendKey feeds one navigation key into the console. Up and Down browse
// history, Left and Right move the cursor. All other keys are ignored.
func (c *Console) SendKey(k input.Key) {
	switch k {
	case input.KeyUp:
		if line, ok := c.hist.LineUp(); ok {
			c.input.SetText(line)
		}

	case input.KeyDown:
		c.input.SetText(c.hist.LineDown())

	case input.KeyRight:
		c.input.CursorRight()

	case input.KeyLeft:
		c.input.CursorLeft()
	}
}

// commit tokenizes the edit buffer and dispatches it. A line with no
// tokens is discarded without touching history or the registry.
func (c *Console) commit() {
	line := c.input.String()
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		c.input.Clear()
		return
	}

	c.hist.Add(line)
	c.input.Clear()
	c.dispatch(tokens[0], tokens[1:])
}

// dispatch runs a command, falling through to the cvar registry when
// the name matches a variable instead. Lookup failures are reported to
// the output sink, never returned.
func (c *Console) dispatch(name string, args []string) {
	err := c.cmds.Exec(name, args)
	if err == nil {
		return
	}

	if errors.Is(err, ErrUnknownCommand) && c.cvars != nil && c.cvars.Has(name) {
		if len(args) == 0 {
			val, err := c.cvars.Value(name)
			if err == nil {
				c.Printf("%q is %q", name, val)
			}
			return
		}
		if err := c.cvars.Set(name, strings.Join(args, " ")); err != nil {
			c.Println(err.Error())
		}
		return
	}

	c.Printf("Unknown command: %s", name)
}
