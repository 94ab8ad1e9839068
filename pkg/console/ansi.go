package console

import (
	"github.com/charmbracelet/x/ansi"
)

// Sequences holds the control sequences the renderers emit. Each cursor
// movement entry moves exactly one cell.
type Sequences struct {
	Up          string
	Down        string
	Left        string
	Right       string
	ClearToEOL  string
	ClearScreen string
	HideCursor  string
	ShowCursor  string
}

// ANSISequences returns the fixed VT100 sequence table.
func ANSISequences() Sequences {
	return Sequences{
		Up:          "\033[A",
		Down:        "\033[B",
		Left:        "\033[D",
		Right:       "\033[C",
		ClearToEOL:  "\033[K",
		ClearScreen: "\033[H\033[2J",
		HideCursor:  "\033[?25l",
		ShowCursor:  "\033[?25h",
	}
}

// merge fills empty entries of s from fallback.
func (s Sequences) merge(fallback Sequences) Sequences {
	pick := func(v, alt string) string {
		if v == "" {
			return alt
		}
		return v
	}
	return Sequences{
		Up:          pick(s.Up, fallback.Up),
		Down:        pick(s.Down, fallback.Down),
		Left:        pick(s.Left, fallback.Left),
		Right:       pick(s.Right, fallback.Right),
		ClearToEOL:  pick(s.ClearToEOL, fallback.ClearToEOL),
		ClearScreen: pick(s.ClearScreen, fallback.ClearScreen),
		HideCursor:  pick(s.HideCursor, fallback.HideCursor),
		ShowCursor:  pick(s.ShowCursor, fallback.ShowCursor),
	}
}

// StripFormatting removes every escape sequence from text.
func StripFormatting(text string) string {
	return ansi.Strip(text)
}

// VisibleLength returns the number of terminal cells text occupies once
// its escape sequences are removed. Dingbats and geometric shapes such as
// ❯ and ● count as one cell, the way terminals draw them.
func VisibleLength(text string) int {
	return ansi.StringWidth(text)
}
