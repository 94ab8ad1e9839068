package utils

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultTerminalWidth is used when no terminal reports its size.
const DefaultTerminalWidth = 80

// TerminalSize represents the dimensions of the terminal
type TerminalSize struct {
	Width  int
	Height int
}

// GetTerminalSize returns the size of the first standard stream that is a
// terminal, then COLUMNS/LINES, then 80x24.
func GetTerminalSize() TerminalSize {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 && height > 0 {
			return TerminalSize{Width: width, Height: height}
		}
	}

	size := TerminalSize{Width: DefaultTerminalWidth, Height: 24}
	if w := envInt("COLUMNS"); w > 0 {
		size.Width = w
	}
	if h := envInt("LINES"); h > 0 {
		size.Height = h
	}
	return size
}

// TerminalWidth returns the terminal width in cells.
func TerminalWidth() int {
	return GetTerminalSize().Width
}

func envInt(name string) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}
	return v
}
