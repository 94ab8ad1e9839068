//go:build windows
// +build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// DetectSequences enables virtual terminal processing on the console and
// returns the ANSI table. Consoles that refuse VT mode still get ANSI.
func DetectSequences() Sequences {
	_ = enableVirtualTerminal(os.Stdout)
	return ANSISequences()
}

// enableVirtualTerminal turns on VT escape handling for the console
// behind f.
func enableVirtualTerminal(f *os.File) error {
	handle := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_PROCESSED_OUTPUT|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
