package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleFormat(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		styles []string
		want   string
	}{
		{"no styles", "plain", nil, "plain"},
		{"unknown only", "plain", []string{"sparkly"}, "plain"},
		{"bold", "x", []string{"bold"}, "\033[1mx\033[0m"},
		{"colour and highlight", "x", []string{"red", "on-white"}, "\033[31m\033[47mx\033[0m"},
		{"space separated", "x", []string{"dark underline"}, "\033[2m\033[4mx\033[0m"},
		{"unknown ignored", "x", []string{"bogus", "cyan"}, "\033[36mx\033[0m"},
		{"grey", "x", []string{"grey"}, "\033[90mx\033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StyleFormat(tt.text, tt.styles...))
		})
	}
}

func TestStripFormattingInvertsStyleFormat(t *testing.T) {
	for _, name := range StyleNames() {
		styled := StyleFormat("choice ❯ ●", name)
		assert.Equal(t, "choice ❯ ●", StripFormatting(styled), name)
	}
	assert.Equal(t, "a[b]c", StripFormatting(StyleFormat("a", "bold")+"[b]"+StyleFormat("c", "dark", "italic")))
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{StyleFormat("abc", "bold", "blue"), 3},
		{"\033[A\033[Kxy", 2},
		{"[##]", 4},
		{"日本", 4},
		{"❯", 1},
		{"●○", 2},
		{StyleFormat("❯", "magenta", "bold"), 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VisibleLength(tt.text), "%q", tt.text)
	}
}
