// Package tui provides a raw-terminal frontend for the console. The
// terminal is switched into raw mode, bytes are decoded into console
// events, and output lines are styled with ANSI colors.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"voidrunner/pkg/engine/console"
	engineinput "voidrunner/pkg/engine/input"
	"voidrunner/pkg/game/host"
)

// Renderer is the terminal frontend.
type Renderer struct {
	in  io.Reader
	out io.Writer
}

// New creates a terminal frontend on stdin/stdout.
func New() *Renderer {
	return &Renderer{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// Init is a no-op; raw mode is entered in Run so it is always paired
// with the restore.
func (r *Renderer) Init() error {
	return nil
}

// Run switches the terminal to raw mode and feeds decoded events into
// the console until Ctrl+C or EOF.
func (r *Renderer) Run(h *host.Host) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	// Tee console output to the terminal on top of the host's log
	h.Console.SetPrinter(console.Tee(h.Log, console.PrinterFunc(r.printLine)))
	defer h.Console.SetPrinter(h.Log)

	r.printLine(gotext.Get("Console ready. Type 'help' for commands."))
	r.drawPrompt(h)

	dec := engineinput.NewDecoder(r.in)
	for {
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			fmt.Fprint(r.out, "\r\n")
			return nil
		}
		if err != nil {
			return err
		}

		if ev.Ch == engineinput.CharInterrupt {
			fmt.Fprint(r.out, "\r\n")
			return nil
		}

		if ev.Key != engineinput.KeyNone {
			h.Console.SendKey(ev.Key)
		} else {
			h.Console.SendChar(ev.Ch)
		}
		r.drawPrompt(h)
	}
}

// printLine writes one console output line above the prompt.
func (r *Renderer) printLine(line string) {
	fmt.Fprintf(r.out, "\r\x1b[K%s\r\n", color.FgGray.Render(line))
}

// drawPrompt redraws the edit line in place with the cursor positioned.
func (r *Renderer) drawPrompt(h *host.Host) {
	line, curs := h.Console.Line()
	prompt := color.FgGreen.Render("> ")
	fmt.Fprintf(r.out, "\r\x1b[K%s%s", prompt, line)

	// Walk the terminal cursor back to the edit cursor
	if back := len([]rune(line)) - curs; back > 0 {
		fmt.Fprintf(r.out, "\x1b[%dD", back)
	}
}
