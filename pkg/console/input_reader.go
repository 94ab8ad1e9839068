package console

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	escByte = 0x1b

	// maxSequenceLen bounds a CSI sequence including its ESC [ prefix.
	maxSequenceLen = 8
)

// KeyDecoder turns raw terminal input into one Key per call.
type KeyDecoder struct {
	in  io.Reader
	fd  int
	tty bool
	buf [1]byte
}

// NewKeyDecoder creates a decoder reading from in. When in is a terminal
// it is switched to raw mode for the duration of each ReadKey call.
func NewKeyDecoder(in io.Reader) *KeyDecoder {
	d := &KeyDecoder{in: in, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		d.fd = int(f.Fd())
		d.tty = true
	}
	return d
}

// NewStdinKeyDecoder creates a decoder over os.Stdin.
func NewStdinKeyDecoder() *KeyDecoder {
	return NewKeyDecoder(os.Stdin)
}

// IsTerminal reports whether the decoder reads from a terminal.
func (d *KeyDecoder) IsTerminal() bool {
	return d.tty
}

// ReadKey blocks until one complete keypress is available. Named
// sequences are returned as their symbolic Key; with raw set the bytes
// are returned verbatim.
func (d *KeyDecoder) ReadKey(raw bool) (Key, error) {
	seq, err := d.readSequence()
	if err != nil {
		return "", err
	}
	return resolveKey(seq, raw), nil
}

// withRawMode runs fn with the terminal in raw mode and restores the
// previous mode on every exit path, including panics.
func (d *KeyDecoder) withRawMode(fn func() (string, error)) (string, error) {
	if !d.tty {
		return fn()
	}
	oldState, err := term.MakeRaw(d.fd)
	if err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(d.fd, oldState)

	return fn()
}

// readByte reads exactly one byte, retrying empty reads.
func (d *KeyDecoder) readByte() (byte, error) {
	for {
		n, err := d.in.Read(d.buf[:])
		if n == 1 {
			return d.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// decodeSequence reads one logical keypress from next.
//
// A lone byte is returned as-is, a UTF-8 lead byte pulls in the rest of
// its rune. ESC pulls one more byte and only continues for '[' (CSI) or
// 'O' (SS3). A CSI whose first byte is a digit runs until its final byte;
// an SS3 sequence carries exactly one more byte.
func decodeSequence(next func() (byte, error)) (string, error) {
	b, err := next()
	if err != nil {
		return "", err
	}
	if b != escByte {
		return decodeRune(b, next)
	}

	seq := []byte{escByte}
	b, err = next()
	if err != nil {
		return "", err
	}
	seq = append(seq, b)

	switch b {
	case '[':
		b, err = next()
		if err != nil {
			return "", err
		}
		seq = append(seq, b)
		if !isDigit(b) {
			break
		}
		for !isFinalByte(b) && len(seq) < maxSequenceLen {
			b, err = next()
			if err != nil {
				return "", err
			}
			seq = append(seq, b)
		}
	case 'O':
		b, err = next()
		if err != nil {
			return "", err
		}
		seq = append(seq, b)
	}

	return string(seq), nil
}

// decodeRune completes a UTF-8 rune whose first byte is lead. Invalid
// lead bytes are returned alone.
func decodeRune(lead byte, next func() (byte, error)) (string, error) {
	size := runeLen(lead)
	buf := []byte{lead}
	for len(buf) < size {
		b, err := next()
		if err != nil {
			return "", err
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}

// runeLen returns the encoded length announced by a UTF-8 lead byte.
func runeLen(lead byte) int {
	switch {
	case lead < utf8.RuneSelf:
		return 1
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	case lead&0xf8 == 0xf0:
		return 4
	default:
		return 1
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isFinalByte reports whether b terminates a CSI sequence.
func isFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
