package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alantheprice/promptkit/pkg/console"
	"golang.org/x/text/cases"
)

// Displayable is anything a selector can list.
type Displayable interface {
	// Value is what the prompt returns when the item is picked.
	Value() any
	// Label is the unstyled display text.
	Label() string
	// Render returns the text drawn on the item's row.
	Render(styled bool) string
}

// Plain lists a bare value using its default string form.
type Plain struct {
	V any
}

func (p Plain) Value() any                { return p.V }
func (p Plain) Label() string             { return fmt.Sprint(p.V) }
func (p Plain) Render(styled bool) string { return p.Label() }

// PlainChoices wraps each value in a Plain.
func PlainChoices[T any](values ...T) []Displayable {
	out := make([]Displayable, len(values))
	for i, v := range values {
		out[i] = Plain{V: v}
	}
	return out
}

// Choice is a listed item with an optional label, styles and mnemonic.
type Choice struct {
	value     any
	label     string
	styles    []string
	mnemonic  string // folded mnemonic character, empty when unset
	bracketed bool
}

// NewChoice creates a choice. An empty label defaults to the value's
// string form. The mnemonic is either a single character ("f") that is
// underlined in the label or a bracketed one ("[s]") that is wrapped in
// brackets; it must occur in the label, ignoring case.
func NewChoice(value any, label, mnemonic string, styles ...string) (*Choice, error) {
	if label == "" {
		label = fmt.Sprint(value)
	}
	c := &Choice{value: value, label: label, styles: styles}
	if mnemonic == "" {
		return c, nil
	}

	char := mnemonic
	if strings.HasPrefix(mnemonic, "[") && strings.HasSuffix(mnemonic, "]") && len(mnemonic) > 2 {
		char = mnemonic[1 : len(mnemonic)-1]
		c.bracketed = true
	}
	if utf8.RuneCountInString(char) != 1 {
		return nil, fmt.Errorf("%w: mnemonic %q must be a single character", ErrConfig, mnemonic)
	}
	c.mnemonic = foldString(char)
	if c.mnemonicIndex() < 0 {
		return nil, fmt.Errorf("%w: mnemonic %q does not occur in label %q", ErrConfig, mnemonic, label)
	}
	return c, nil
}

// MustChoice is NewChoice for literals known to be valid.
func MustChoice(value any, label, mnemonic string, styles ...string) *Choice {
	c, err := NewChoice(value, label, mnemonic, styles...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Choice) Value() any       { return c.value }
func (c *Choice) Label() string    { return c.label }
func (c *Choice) Styles() []string { return c.styles }

// Mnemonic returns the folded mnemonic character, or "" when unset.
func (c *Choice) Mnemonic() string { return c.mnemonic }

// Render draws the label with the mnemonic marked. Bracketed mnemonics
// are always bracketed; plain ones are underlined when styled and
// bracketed otherwise.
func (c *Choice) Render(styled bool) string {
	style := func(text string, extra ...string) string {
		if !styled || text == "" {
			return text
		}
		return console.StyleFormat(text, append(append([]string{}, c.styles...), extra...)...)
	}

	i := c.mnemonicIndex()
	if i < 0 {
		return style(c.label)
	}

	_, size := utf8.DecodeRuneInString(c.label[i:])
	before, char, after := c.label[:i], c.label[i:i+size], c.label[i+size:]

	var mark string
	switch {
	case c.bracketed || !styled:
		mark = style("[" + char + "]")
	default:
		mark = style(char, "underline")
	}
	return style(before) + mark + style(after)
}

// key identifies a choice for de-duplication.
func (c *Choice) key() string {
	return fmt.Sprintf("%#v\x00%s", c.value, c.label)
}

// mnemonicIndex returns the byte offset of the first label rune matching
// the mnemonic, or -1.
func (c *Choice) mnemonicIndex() int {
	if c.mnemonic == "" {
		return -1
	}
	for i, r := range c.label {
		if foldString(string(r)) == c.mnemonic {
			return i
		}
	}
	return -1
}

// displayKey identifies any Displayable for de-duplication.
func displayKey(d Displayable) string {
	if c, ok := d.(*Choice); ok {
		return c.key()
	}
	return fmt.Sprintf("%#v\x00%s", d.Value(), d.Label())
}

// mnemonicOf returns the folded mnemonic of d, if it has one.
func mnemonicOf(d Displayable) string {
	if m, ok := d.(interface{ Mnemonic() string }); ok {
		return m.Mnemonic()
	}
	return ""
}

func foldString(s string) string {
	return cases.Fold().String(s)
}
