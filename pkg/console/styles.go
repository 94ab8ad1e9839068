package console

import (
	"strconv"
	"strings"
)

// SGRReset clears every active style.
const SGRReset = "\033[0m"

// sgrCodes maps style names to their SGR parameter.
var sgrCodes = map[string]int{
	// modes
	"bold":      1,
	"dark":      2,
	"italic":    3,
	"underline": 4,
	"blink":     5,
	"reversed":  7,
	"concealed": 8,
	"strikeout": 9,

	// colours
	"grey":    90,
	"red":     31,
	"green":   32,
	"yellow":  33,
	"blue":    34,
	"magenta": 35,
	"cyan":    36,
	"white":   37,

	// highlights
	"on-grey":    100,
	"on-red":     41,
	"on-green":   42,
	"on-yellow":  43,
	"on-blue":    44,
	"on-magenta": 45,
	"on-cyan":    46,
	"on-white":   47,
}

// StyleNames returns every style name StyleFormat understands.
func StyleNames() []string {
	names := make([]string, 0, len(sgrCodes))
	for name := range sgrCodes {
		names = append(names, name)
	}
	return names
}

// StyleFormat wraps text in the SGR sequences for styles followed by a
// reset. Entries may hold several space separated names; unknown names
// are ignored. With no known styles text is returned unchanged.
func StyleFormat(text string, styles ...string) string {
	var prefix strings.Builder
	for _, entry := range styles {
		for _, name := range strings.Fields(entry) {
			code, ok := sgrCodes[strings.ToLower(name)]
			if !ok {
				continue
			}
			prefix.WriteString("\033[")
			prefix.WriteString(strconv.Itoa(code))
			prefix.WriteString("m")
		}
	}
	if prefix.Len() == 0 {
		return text
	}
	return prefix.String() + text + SGRReset
}
