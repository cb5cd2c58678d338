package console

import "testing"

// checkInvariant verifies 0 <= cursor <= len after an operation.
func checkInvariant(t *testing.T, e *LineEditor, op string) {
	t.Helper()
	if e.Cursor() < 0 || e.Cursor() > e.Len() {
		t.Fatalf("after %s: cursor %d outside [0, %d]", op, e.Cursor(), e.Len())
	}
}

func TestLineEditor_InsertAdvancesCursor(t *testing.T) {
	e := NewLineEditor()
	for i, c := range "set" {
		e.Insert(c)
		if e.Cursor() != i+1 {
			t.Errorf("after insert %d: cursor = %d, want %d", i, e.Cursor(), i+1)
		}
	}
	if e.String() != "set" {
		t.Errorf("text = %q, want %q", e.String(), "set")
	}
}

func TestLineEditor_InsertAtCursorMiddle(t *testing.T) {
	e := NewLineEditor()
	e.SetText("fv")
	e.CursorLeft()
	e.Insert('o')

	if e.String() != "fov" {
		t.Errorf("text = %q, want %q", e.String(), "fov")
	}
	if e.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", e.Cursor())
	}
}

func TestLineEditor_CursorClampedAtBounds(t *testing.T) {
	e := NewLineEditor()
	e.CursorLeft()
	if e.Cursor() != 0 {
		t.Errorf("cursor moved past start: %d", e.Cursor())
	}

	e.SetText("ab")
	e.CursorRight()
	if e.Cursor() != 2 {
		t.Errorf("cursor moved past end: %d", e.Cursor())
	}
}

func TestLineEditor_DeleteAtEndIsNoOp(t *testing.T) {
	e := NewLineEditor()
	e.SetText("ab")
	e.Delete()
	if e.String() != "ab" || e.Cursor() != 2 {
		t.Errorf("delete at end changed state: %q cursor %d", e.String(), e.Cursor())
	}
}

func TestLineEditor_DeleteRemovesAtCursor(t *testing.T) {
	e := NewLineEditor()
	e.SetText("abc")
	e.CursorLeft()
	e.CursorLeft()
	e.Delete()
	if e.String() != "ac" || e.Cursor() != 1 {
		t.Errorf("got %q cursor %d, want %q cursor 1", e.String(), e.Cursor(), "ac")
	}
}

func TestLineEditor_BackspaceAtStartIsNoOp(t *testing.T) {
	e := NewLineEditor()
	e.SetText("ab")
	e.Clear()
	e.Backspace()
	if e.String() != "" || e.Cursor() != 0 {
		t.Errorf("backspace at start changed state: %q cursor %d", e.String(), e.Cursor())
	}
}

func TestLineEditor_InsertBackspaceIsInverse(t *testing.T) {
	e := NewLineEditor()
	e.SetText("hello")
	e.CursorLeft()
	e.CursorLeft()

	before, cursBefore := e.String(), e.Cursor()
	e.Insert('x')
	e.Backspace()

	if e.String() != before || e.Cursor() != cursBefore {
		t.Errorf("insert+backspace: got %q cursor %d, want %q cursor %d",
			e.String(), e.Cursor(), before, cursBefore)
	}
}

func TestLineEditor_SetTextMovesCursorToEnd(t *testing.T) {
	e := NewLineEditor()
	e.SetText("history line")
	if e.Cursor() != e.Len() {
		t.Errorf("cursor = %d, want %d", e.Cursor(), e.Len())
	}
}

func TestLineEditor_CursorInvariantUnderRandomOps(t *testing.T) {
	e := NewLineEditor()
	ops := []struct {
		name string
		fn   func()
	}{
		{"insert", func() { e.Insert('x') }},
		{"left", e.CursorLeft},
		{"right", e.CursorRight},
		{"delete", e.Delete},
		{"backspace", e.Backspace},
	}

	// Deterministic walk over a long mixed sequence
	for i := 0; i < 1000; i++ {
		op := ops[(i*7+i/3)%len(ops)]
		op.fn()
		checkInvariant(t, e, op.name)
	}
}

func TestLineEditor_DebugStringMarksCursor(t *testing.T) {
	e := NewLineEditor()
	e.SetText("ab")
	e.CursorLeft()
	if got := e.DebugString(); got != "a_b" {
		t.Errorf("DebugString() = %q, want %q", got, "a_b")
	}
}
