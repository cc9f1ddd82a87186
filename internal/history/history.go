// Package history keeps the recall buffer of submitted command lines and the
// cursor used to walk back and forth through it.
package history

import "slices"

// Cursor is the recall buffer. The zero value is an empty buffer that is not
// recalling anything.
//
// While recalling, position counts back from the most recent entry: 0 is the
// newest line, Len()-1 the oldest.
type Cursor struct {
	entries   []string
	position  int
	recalling bool
}

// NewCursor creates a cursor seeded with previously submitted lines, oldest
// first.
func NewCursor(entries ...string) *Cursor {
	return &Cursor{entries: slices.Clone(entries)}
}

// Add records a submitted line and ends any recall in progress.
func (c *Cursor) Add(line string) {
	c.entries = append(c.entries, line)
	c.Reset()
}

// Reset ends the recall in progress.
func (c *Cursor) Reset() {
	c.recalling = false
	c.position = 0
}

// Len returns the number of recorded lines.
func (c *Cursor) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the recorded lines, oldest first.
func (c *Cursor) Entries() []string {
	return slices.Clone(c.entries)
}

// Position reports the recall offset from the newest entry, and false when
// no recall is in progress.
func (c *Cursor) Position() (int, bool) {
	if !c.recalling {
		return 0, false
	}
	return c.position, true
}

// HasPrev reports whether Prev would show a line not shown yet.
func (c *Cursor) HasPrev() bool {
	if !c.recalling {
		return len(c.entries) > 0
	}
	return c.position+1 < len(c.entries)
}

// Prev moves one step toward older lines and returns the line there. The
// first call starts at the newest line. The oldest line is a floor: calling
// Prev on it returns it again. It returns false only when nothing was ever
// recorded.
func (c *Cursor) Prev() (string, bool) {
	if len(c.entries) == 0 {
		return "", false
	}
	switch {
	case !c.recalling:
		c.recalling = true
		c.position = 0
	case c.position+1 < len(c.entries):
		c.position++
	}
	return c.current(), true
}

// HasNext reports whether a recall is in progress, so that Next either shows
// a newer line or ends the recall.
func (c *Cursor) HasNext() bool {
	return c.recalling
}

// Next moves one step toward newer lines and returns the line there. Moving
// past the newest line ends the recall and returns false, telling the caller
// to clear its input.
func (c *Cursor) Next() (string, bool) {
	if !c.recalling {
		return "", false
	}
	if c.position == 0 {
		c.Reset()
		return "", false
	}
	c.position--
	return c.current(), true
}

func (c *Cursor) current() string {
	return c.entries[len(c.entries)-1-c.position]
}
