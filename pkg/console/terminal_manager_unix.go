//go:build !windows
// +build !windows

package console

import (
	"regexp"

	"github.com/xo/terminfo"
)

// paddingPattern matches terminfo delay specifications such as $<5> or $<2*/>.
var paddingPattern = regexp.MustCompile(`\$<[0-9.]+[*/]*>`)

// DetectSequences looks the cursor capabilities of $TERM up in terminfo.
// Capabilities the entry lacks, or a missing entry, fall back to ANSI.
func DetectSequences() Sequences {
	ti, err := terminfo.LoadFromEnv()
	if err != nil {
		return ANSISequences()
	}
	return sequencesFromTerminfo(ti).merge(ANSISequences())
}

func sequencesFromTerminfo(ti *terminfo.Terminfo) Sequences {
	capability := func(name int) string {
		return paddingPattern.ReplaceAllString(string(ti.Strings[name]), "")
	}
	return Sequences{
		Up:          capability(terminfo.CursorUp),
		Down:        capability(terminfo.CursorDown),
		Left:        capability(terminfo.CursorLeft),
		Right:       capability(terminfo.CursorRight),
		ClearToEOL:  capability(terminfo.ClrEol),
		ClearScreen: capability(terminfo.ClearScreen),
		HideCursor:  capability(terminfo.CursorInvisible),
		ShowCursor:  capability(terminfo.CursorNormal),
	}
}
