package console

import (
	"fmt"
	"strings"
)

// Key is a symbolic key name such as "up" or "ctrl-c". Input with no
// symbolic name is carried verbatim.
type Key string

// Symbolic keys produced by KeyDecoder.
const (
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyHome      Key = "home"
	KeyEnd       Key = "end"
	KeyPageUp    Key = "page-up"
	KeyPageDown  Key = "page-down"
	KeyInsert    Key = "insert"
	KeyDelete    Key = "delete"
	KeyBackspace Key = "backspace"
	KeyTab       Key = "tab"
	KeySpace     Key = "space"
	KeyEscape    Key = "escape"
	KeyLF        Key = "lf" // carriage return, what Enter sends in raw mode
	KeyNL        Key = "nl" // line feed
	KeyCtrlC     Key = "ctrl-c"
	KeyCtrlD     Key = "ctrl-d"
	KeyCtrlZ     Key = "ctrl-z"
)

// keySequences maps symbolic keys to the bytes a VT-compatible terminal
// sends for them. Every sequence appears once so the table can be flipped.
var keySequences = buildKeySequences()

// sequenceKeys is keySequences flipped.
var sequenceKeys = flipKeySequences(keySequences)

func buildKeySequences() map[Key]string {
	keys := map[Key]string{
		KeyUp:        "\x1b[A",
		KeyDown:      "\x1b[B",
		KeyRight:     "\x1b[C",
		KeyLeft:      "\x1b[D",
		KeyHome:      "\x1b[H",
		KeyEnd:       "\x1b[F",
		KeyInsert:    "\x1b[2~",
		KeyDelete:    "\x1b[3~",
		KeyPageUp:    "\x1b[5~",
		KeyPageDown:  "\x1b[6~",
		KeyBackspace: "\x7f",
		KeyTab:       "\t",
		KeySpace:     " ",
		KeyEscape:    "\x1b",
		KeyLF:        "\r",
		KeyNL:        "\n",
		"f1":         "\x1bOP",
		"f2":         "\x1bOQ",
		"f3":         "\x1bOR",
		"f4":         "\x1bOS",
		"f5":         "\x1b[15~",
		"f6":         "\x1b[17~",
		"f7":         "\x1b[18~",
		"f8":         "\x1b[19~",
		"f9":         "\x1b[20~",
		"f10":        "\x1b[21~",
		"f11":        "\x1b[23~",
		"f12":        "\x1b[24~",
	}

	// ctrl-i, ctrl-j and ctrl-m are tab, nl and lf.
	for c := 'a'; c <= 'z'; c++ {
		switch c {
		case 'i', 'j', 'm':
			continue
		}
		keys[Key(fmt.Sprintf("ctrl-%c", c))] = string(rune(c - 'a' + 1))
	}
	return keys
}

func flipKeySequences(keys map[Key]string) map[string]Key {
	flipped := make(map[string]Key, len(keys))
	for key, seq := range keys {
		flipped[seq] = key
	}
	return flipped
}

// LookupSequence returns the symbolic key for a raw byte sequence.
func LookupSequence(seq string) (Key, bool) {
	key, ok := sequenceKeys[seq]
	return key, ok
}

// Sequence returns the bytes a terminal sends for k. Keys without a table
// entry are their own sequence.
func (k Key) Sequence() string {
	if seq, ok := keySequences[k]; ok {
		return seq
	}
	return string(k)
}

// IsEscapeSequence reports whether k is an unmapped ESC-introduced
// sequence, i.e. input the decoder could not name.
func (k Key) IsEscapeSequence() bool {
	_, named := keySequences[k]
	return !named && strings.HasPrefix(string(k), "\x1b")
}

// resolveKey maps raw bytes to a Key. raw keeps the bytes verbatim.
func resolveKey(seq string, raw bool) Key {
	if raw {
		return Key(seq)
	}
	if key, ok := sequenceKeys[seq]; ok {
		return key
	}
	return Key(seq)
}
