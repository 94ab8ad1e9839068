//go:build windows
// +build windows

package console

import (
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/windows"
)

// pollInterval is how long the console reader sleeps between _kbhit polls.
const pollInterval = 10 * time.Millisecond

var (
	msvcrt    = windows.NewLazySystemDLL("msvcrt.dll")
	procKbhit = msvcrt.NewProc("_kbhit")
	procGetch = msvcrt.NewProc("_getch")
)

// readSequence reads one keypress. Console input is polled through msvcrt
// so that Ctrl+C can be reported as a key; anything else falls back to
// the byte decoder.
func (d *KeyDecoder) readSequence() (string, error) {
	if !d.tty || d.fd != int(os.Stdin.Fd()) {
		return d.withRawMode(func() (string, error) {
			return decodeSequence(d.readByte)
		})
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	for {
		select {
		case <-interrupts:
			return keySequences[KeyCtrlC], nil
		default:
		}

		if hit, _, _ := procKbhit.Call(); hit != 0 {
			return decodeScanCode(getch)
		}
		time.Sleep(pollInterval)
	}
}

// getch reads one code unit from the console without echo.
func getch() (byte, error) {
	if err := procGetch.Find(); err != nil {
		return 0, err
	}
	unit, _, _ := procGetch.Call()
	return byte(unit), nil
}
