package ui

import (
	"testing"

	"github.com/alantheprice/promptkit/pkg/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChoiceLabelDefaultsToValue(t *testing.T) {
	c, err := NewChoice(42, "", "")
	require.NoError(t, err)
	assert.Equal(t, "42", c.Label())
	assert.Equal(t, 42, c.Value())
	assert.Empty(t, c.Mnemonic())
}

func TestNewChoiceMnemonicValidation(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		mnemonic string
		wantErr  bool
	}{
		{"plain present", "fig", "f", false},
		{"case insensitive", "Fig", "f", false},
		{"upper mnemonic", "fig", "G", false},
		{"bracketed", "six", "[s]", false},
		{"non ascii", "Éclair", "é", false},
		{"missing", "fig", "z", true},
		{"bracketed missing", "fig", "[z]", true},
		{"too long", "fig", "fi", true},
		{"empty brackets", "fig", "[]", true},
		{"bracketed too long", "fig", "[fi]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChoice(tt.label, tt.label, tt.mnemonic)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMustChoicePanicsOnBadMnemonic(t *testing.T) {
	assert.Panics(t, func() { MustChoice("x", "fig", "q") })
}

func TestChoiceRender(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		mnemonic string
		styles   []string
		styled   bool
		want     string
	}{
		{"plain label", "fig", "", nil, true, "fig"},
		{"styled label", "fig", "", []string{"red"}, true, console.StyleFormat("fig", "red")},
		{"underlined mnemonic", "fig", "g", nil, true, "fi" + console.StyleFormat("g", "underline")},
		{"first occurrence", "banana", "a", nil, true, "b" + console.StyleFormat("a", "underline") + "nana"},
		{"bracketed mnemonic", "six", "[s]", nil, true, "[s]ix"},
		{"unstyled plain mnemonic", "Fig", "f", nil, false, "[F]ig"},
		{"unstyled ignores styles", "fig", "", []string{"red"}, false, "fig"},
		{
			"styles around mnemonic", "skip", "[s]", []string{"dark"}, true,
			console.StyleFormat("[s]", "dark") + console.StyleFormat("kip", "dark"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewChoice(tt.label, tt.label, tt.mnemonic, tt.styles...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Render(tt.styled))
		})
	}
}

func TestChoiceRenderKeepsLabelText(t *testing.T) {
	c := MustChoice("v", "Underline me", "m", "bold", "blue")
	assert.Equal(t, "Underline me", console.StripFormatting(c.Render(true)))
}

func TestPlain(t *testing.T) {
	p := Plain{V: 3.5}
	assert.Equal(t, 3.5, p.Value())
	assert.Equal(t, "3.5", p.Label())
	assert.Equal(t, "3.5", p.Render(true))

	choices := PlainChoices(1, 2)
	require.Len(t, choices, 2)
	assert.Equal(t, 2, choices[1].Value())
}

func TestDisplayKeyDistinguishesValueAndLabel(t *testing.T) {
	assert.Equal(t, displayKey(Plain{V: "a"}), displayKey(Plain{V: "a"}))
	assert.NotEqual(t, displayKey(Plain{V: 1}), displayKey(Plain{V: "1"}))
	assert.NotEqual(t, displayKey(MustChoice(1, "one", "")), displayKey(MustChoice(1, "uno", "")))
	assert.Equal(t, displayKey(MustChoice(1, "one", "")), displayKey(MustChoice(1, "one", "o")))
}
