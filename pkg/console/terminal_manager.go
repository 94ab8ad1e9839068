package console

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
)

// Cursor emits relative cursor movement and screen control. Every method
// performs a single write followed by a flush so the terminal reflects
// each step immediately. Methods are safe to call from a signal handler
// goroutine while a prompt is drawing.
type Cursor struct {
	mu  sync.Mutex
	w   *bufio.Writer
	seq Sequences
}

// NewCursor creates a cursor writing seq-encoded control to w.
func NewCursor(w io.Writer, seq Sequences) *Cursor {
	return &Cursor{w: bufio.NewWriter(w), seq: seq}
}

// NewTerminalCursor creates a cursor on stdout using the sequences of the
// current terminal.
func NewTerminalCursor() *Cursor {
	return NewCursor(os.Stdout, DetectSequences())
}

// Sequences returns the table the cursor emits.
func (c *Cursor) Sequences() Sequences {
	return c.seq
}

// Move shifts the cursor by rows (negative is up) then cols (negative is
// left). Move(0, 0) writes nothing.
func (c *Cursor) Move(rows, cols int) error {
	if rows == 0 && cols == 0 {
		return nil
	}

	var b strings.Builder
	switch {
	case rows < 0:
		b.WriteString(strings.Repeat(c.seq.Up, -rows))
	case rows > 0:
		b.WriteString(strings.Repeat(c.seq.Down, rows))
	}
	switch {
	case cols < 0:
		b.WriteString(strings.Repeat(c.seq.Left, -cols))
	case cols > 0:
		b.WriteString(strings.Repeat(c.seq.Right, cols))
	}
	return c.emit(b.String())
}

// Hide makes the cursor invisible.
func (c *Cursor) Hide() error {
	return c.emit(c.seq.HideCursor)
}

// Show makes the cursor visible.
func (c *Cursor) Show() error {
	return c.emit(c.seq.ShowCursor)
}

// SetVisible shows or hides the cursor.
func (c *Cursor) SetVisible(visible bool) error {
	if visible {
		return c.Show()
	}
	return c.Hide()
}

// EraseLines returns to column 0, then n times moves up one row and clears
// it, leaving the cursor n rows up.
func (c *Cursor) EraseLines(n int) error {
	if n < 0 {
		n = 0
	}
	return c.emit("\r" + strings.Repeat(c.seq.Up+c.seq.ClearToEOL, n))
}

// EraseScreen clears the screen and homes the cursor.
func (c *Cursor) EraseScreen() error {
	return c.emit(c.seq.ClearScreen)
}

// Print writes text as-is.
func (c *Cursor) Print(text string) error {
	return c.emit(text)
}

func (c *Cursor) emit(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.w.WriteString(s); err != nil {
		return err
	}
	return c.w.Flush()
}
