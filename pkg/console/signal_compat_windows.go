//go:build windows
// +build windows

package console

import (
	"os"
)

// signalsToCapture returns nothing on Windows: Ctrl+C is read as a key by
// the console reader and POSIX termination signals do not exist.
func signalsToCapture() []os.Signal {
	return nil
}

// reRaiseSignal cannot re-raise POSIX signals on Windows; exit after cleanup.
func reRaiseSignal(sig os.Signal) { os.Exit(1) }
