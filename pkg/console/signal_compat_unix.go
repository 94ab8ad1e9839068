//go:build !windows
// +build !windows

package console

import (
	"os"
	"os/signal"
	"syscall"
)

// signalsToCapture returns the termination signals that leave the
// terminal in whatever state the prompt had put it in. SIGINT is included:
// outside ReadKey the terminal is in cooked mode and ctrl-c raises it.
func signalsToCapture() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
		syscall.SIGQUIT,
	}
}

// reRaiseSignal re-raises a signal so the default handler can run.
func reRaiseSignal(sig os.Signal) {
	signal.Reset(sig)
	if s, ok := sig.(syscall.Signal); ok {
		_ = syscall.Kill(syscall.Getpid(), s)
	}
}
