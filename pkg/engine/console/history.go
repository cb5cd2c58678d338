package console

// History stores lines previously submitted to the console, most recent
// first, with a navigation cursor. Cursor 0 means "not browsing"; larger
// values walk toward older lines. Growth is unbounded.
type History struct {
	lines []string
	curs  int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Add pushes line to the front and resets the navigation cursor.
func (h *History) Add(line string) {
	h.lines = append([]string{line}, h.lines...)
	h.curs = 0
}

// Len returns the number of stored lines.
func (h *History) Len() int {
	return len(h.lines)
}

// LineUp moves the cursor toward older lines and returns the line it
// lands on. Returns false when the history is empty or the cursor is
// already at the oldest line; repeated calls at the boundary are no-ops.
func (h *History) LineUp() (string, bool) {
	if len(h.lines) == 0 || h.curs >= len(h.lines) {
		return "", false
	}
	h.curs++
	return h.lines[h.curs-1], true
}

// LineDown moves the cursor toward newer lines. Unlike LineUp it always
// returns a line: the empty string once the cursor is back at the prompt.
func (h *History) LineDown() string {
	if h.curs > 0 {
		h.curs--
	}
	if h.curs > 0 {
		return h.lines[h.curs-1]
	}
	return ""
}
