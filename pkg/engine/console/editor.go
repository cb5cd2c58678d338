// Package console implements the in-game command console: an editable
// input line, a history of submitted lines, a bounded output log, a
// command registry and the dispatch glue between them. It is driven
// synchronously by the host's frame loop and never blocks.
package console

// LineEditor is the line of text currently being edited in the console.
// The cursor always satisfies 0 <= cursor <= len(text).
type LineEditor struct {
	text []rune
	curs int
}

// NewLineEditor creates an empty editor with the cursor at position 0.
func NewLineEditor() *LineEditor {
	return &LineEditor{}
}

// String returns the current content of the editor.
func (e *LineEditor) String() string {
	return string(e.text)
}

// Len returns the number of characters in the buffer.
func (e *LineEditor) Len() int {
	return len(e.text)
}

// Cursor returns the current cursor position.
func (e *LineEditor) Cursor() int {
	return e.curs
}

// SetText replaces the buffer content and moves the cursor to the end
// of the line. Used when history substitutes a line into the editor.
func (e *LineEditor) SetText(text string) {
	e.text = []rune(text)
	e.curs = len(e.text)
}

// Insert places c at the cursor position and advances the cursor.
func (e *LineEditor) Insert(c rune) {
	e.text = append(e.text, 0)
	copy(e.text[e.curs+1:], e.text[e.curs:])
	e.text[e.curs] = c
	e.curs++
}

// CursorRight moves the cursor one position right. No change if the
// cursor is already at the end of the line.
func (e *LineEditor) CursorRight() {
	if e.curs < len(e.text) {
		e.curs++
	}
}

// CursorLeft moves the cursor one position left. No change if the
// cursor is already at the start of the line.
func (e *LineEditor) CursorLeft() {
	if e.curs > 0 {
		e.curs--
	}
}

// Delete removes the character at the cursor. No change if the cursor
// is at the end of the line.
func (e *LineEditor) Delete() {
	if e.curs < len(e.text) {
		e.text = append(e.text[:e.curs], e.text[e.curs+1:]...)
	}
}

// Backspace removes the character before the cursor and moves the
// cursor left. No change if the cursor is at the start of the line.
func (e *LineEditor) Backspace() {
	if e.curs > 0 {
		e.text = append(e.text[:e.curs-1], e.text[e.curs:]...)
		e.curs--
	}
}

// Clear empties the buffer and resets the cursor to 0.
func (e *LineEditor) Clear() {
	e.text = e.text[:0]
	e.curs = 0
}

// DebugString renders the buffer with an underscore marking the cursor.
func (e *LineEditor) DebugString() string {
	return string(e.text[:e.curs]) + "_" + string(e.text[e.curs:])
}
