// Package input defines the key space the console understands and decodes
// raw terminal byte streams into console events.
package input

import (
	"bufio"
	"io"
)

// Key identifies a navigation key delivered to the console.
// Anything outside this set is ignored by the console.
type Key int

// Navigation keys
const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Control characters the console gives special meaning to.
const (
	CharReturn    = '\r'   // commit the current line
	CharBackspace = '\x08' // delete before the cursor
	CharDelete    = '\x7f' // delete at the cursor
	CharTab       = '\t'   // reserved for completion
	CharInterrupt = '\x03' // Ctrl+C, frontends treat this as quit
)

// Event is a single decoded terminal input event: either a character
// (Ch != 0) or a navigation key (Key != KeyNone), never both.
type Event struct {
	Ch  rune
	Key Key
}

// Decoder turns a raw-mode terminal byte stream into Events.
// It understands both CSI (ESC [) and SS3 (ESC O) arrow sequences.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next blocks until a complete event is available. Unrecognized escape
// sequences and non-printable bytes are discarded.
func (d *Decoder) Next() (Event, error) {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return Event{}, err
		}

		switch {
		case b == 0x1b:
			ev, ok, err := d.readEscape()
			if err != nil {
				return Event{}, err
			}
			if ok {
				return ev, nil
			}
			// Unknown sequence, discarded

		case b == '\r' || b == '\n':
			return Event{Ch: CharReturn}, nil

		// Terminals send DEL (127) or BS (8) for the backspace key
		case b == 127 || b == 8:
			return Event{Ch: CharBackspace}, nil

		case b == '\t':
			return Event{Ch: CharTab}, nil

		case b == 3:
			return Event{Ch: CharInterrupt}, nil

		case b >= 32 && b < 127:
			return Event{Ch: rune(b)}, nil
		}
	}
}

// readEscape decodes the bytes following an ESC. Returns ok=false for
// sequences that carry no console meaning.
func (d *Decoder) readEscape() (Event, bool, error) {
	b2, err := d.r.ReadByte()
	if err != nil {
		return Event{}, false, err
	}

	if b2 != '[' && b2 != 'O' {
		return Event{}, false, nil
	}

	b3, err := d.r.ReadByte()
	if err != nil {
		return Event{}, false, err
	}

	switch b3 {
	case 'A':
		return Event{Key: KeyUp}, true, nil
	case 'B':
		return Event{Key: KeyDown}, true, nil
	case 'C':
		return Event{Key: KeyRight}, true, nil
	case 'D':
		return Event{Key: KeyLeft}, true, nil
	case '3':
		// ESC [ 3 ~ is the forward-delete key
		b4, err := d.r.ReadByte()
		if err != nil {
			return Event{}, false, err
		}
		if b4 == '~' {
			return Event{Ch: CharDelete}, true, nil
		}
	}

	return Event{}, false, nil
}
