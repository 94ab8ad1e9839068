package ui

import (
	"bytes"
	"io"
	"strings"

	"github.com/alantheprice/promptkit/pkg/console"
)

// screen replays cursor output onto a grid, enough of a VT100 to check
// what the user would see.
type screen struct {
	lines   [][]rune
	row     int
	col     int
	visible bool
}

func replay(out string) *screen {
	s := &screen{visible: true}
	runes := []rune(out)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\r':
			s.col = 0
		case '\n':
			s.row++
			s.col = 0
		case 0x1b:
			i = s.control(runes, i)
		default:
			s.put(r)
		}
	}
	return s
}

// control applies the CSI sequence starting at runes[i] and returns the
// index of its final rune.
func (s *screen) control(runes []rune, i int) int {
	if i+1 >= len(runes) || runes[i+1] != '[' {
		return i
	}
	j := i + 2
	for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
		j++
	}
	if j >= len(runes) {
		return len(runes) - 1
	}
	params := string(runes[i+2 : j])
	switch runes[j] {
	case 'A':
		s.row = max(s.row-1, 0)
	case 'B':
		s.row++
	case 'C':
		s.col++
	case 'D':
		s.col = max(s.col-1, 0)
	case 'K':
		if s.row < len(s.lines) && s.col < len(s.lines[s.row]) {
			s.lines[s.row] = s.lines[s.row][:s.col]
		}
	case 'H':
		s.row, s.col = 0, 0
	case 'J':
		s.lines = nil
	case 'l':
		if params == "?25" {
			s.visible = false
		}
	case 'h':
		if params == "?25" {
			s.visible = true
		}
	}
	return j
}

func (s *screen) put(r rune) {
	for len(s.lines) <= s.row {
		s.lines = append(s.lines, nil)
	}
	line := s.lines[s.row]
	for len(line) <= s.col {
		line = append(line, ' ')
	}
	line[s.col] = r
	s.lines[s.row] = line
	s.col++
}

// text returns the visible lines with trailing blanks trimmed.
func (s *screen) text() []string {
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		out[i] = strings.TrimRight(string(line), " ")
	}
	return out
}

// scriptedKeys replays keys and reports io.EOF once they run out. The
// onRead hook runs before every read.
type scriptedKeys struct {
	keys   []console.Key
	onRead func()
}

func keys(k ...console.Key) *scriptedKeys {
	return &scriptedKeys{keys: k}
}

func (s *scriptedKeys) ReadKey(raw bool) (console.Key, error) {
	if s.onRead != nil {
		s.onRead()
	}
	if len(s.keys) == 0 {
		return "", io.EOF
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

// plainConfig draws unstyled single-cell glyphs.
func plainConfig() Config {
	cfg := DefaultConfig()
	cfg.Plain = true
	return cfg
}

// testTerminal returns a cursor writing ANSI sequences into a buffer.
func testTerminal() (*console.Cursor, *bytes.Buffer) {
	var buf bytes.Buffer
	return console.NewCursor(&buf, console.ANSISequences()), &buf
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Logf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}
