package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alantheprice/promptkit/pkg/console"
)

// Glyph names accepted by SetGlyph.
const (
	GlyphArrow      = "arrow"
	GlyphSelected   = "selected"
	GlyphUnselected = "unselected"
	GlyphBlock      = "block"
	GlyphLeftEdge   = "left-edge"
	GlyphRightEdge  = "right-edge"
)

type glyphCategory int

const (
	categoryPlain glyphCategory = iota
	categoryPrimary
	categorySecondary
)

var glyphCategories = map[string]glyphCategory{
	GlyphArrow:      categorySecondary,
	GlyphSelected:   categoryPrimary,
	GlyphUnselected: categoryPlain,
	GlyphBlock:      categoryPrimary,
	GlyphLeftEdge:   categorySecondary,
	GlyphRightEdge:  categorySecondary,
}

// Config is the caller-owned look of a prompt. The zero value is not
// useful; start from DefaultConfig or ASCIIConfig.
type Config struct {
	// Glyphs maps glyph names to the symbols drawn for them.
	Glyphs map[string]string
	// PrimaryStyle styles the selected and block glyphs.
	PrimaryStyle []string
	// SecondaryStyle styles the arrow and edge glyphs.
	SecondaryStyle []string
	// ASCII records that the glyph set is restricted to ASCII.
	ASCII bool
	// Plain disables every style sequence.
	Plain bool
	// EraseScreen clears the screen before and after a prompt.
	EraseScreen bool
}

// DefaultConfig returns the Unicode glyph set with coloured styles.
func DefaultConfig() Config {
	return Config{
		Glyphs: map[string]string{
			GlyphArrow:      "❯",
			GlyphSelected:   "●",
			GlyphUnselected: "○",
			GlyphBlock:      "█",
			GlyphLeftEdge:   "▐",
			GlyphRightEdge:  "▌",
		},
		PrimaryStyle:   []string{"blue"},
		SecondaryStyle: []string{"magenta", "bold"},
	}
}

// ASCIIConfig returns an unstyled glyph set for terminals that cannot
// draw Unicode.
func ASCIIConfig() Config {
	return Config{
		Glyphs: map[string]string{
			GlyphArrow:      ">",
			GlyphSelected:   "*",
			GlyphUnselected: ".",
			GlyphBlock:      "#",
			GlyphLeftEdge:   "|",
			GlyphRightEdge:  "|",
		},
		ASCII: true,
	}
}

// GlyphNames returns the known glyph names in sorted order.
func GlyphNames() []string {
	names := make([]string, 0, len(glyphCategories))
	for name := range glyphCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetGlyph overrides one glyph.
func (c *Config) SetGlyph(name, value string) error {
	if _, ok := glyphCategories[name]; !ok {
		return fmt.Errorf("%w: unknown glyph %q", ErrConfig, name)
	}
	glyphs := make(map[string]string, len(c.Glyphs)+1)
	for k, v := range c.Glyphs {
		glyphs[k] = v
	}
	glyphs[name] = value
	c.Glyphs = glyphs
	return nil
}

// SetStyles replaces the primary and secondary styles. A nil slice keeps
// the current value.
func (c *Config) SetStyles(primary, secondary []string) {
	if primary != nil {
		c.PrimaryStyle = primary
	}
	if secondary != nil {
		c.SecondaryStyle = secondary
	}
}

// Glyph returns the named glyph with its category style applied.
func (c Config) Glyph(name string) string {
	return c.styleGlyph(name, c.rawGlyph(name))
}

// GlyphRun returns n copies of the named glyph under a single style
// sequence.
func (c Config) GlyphRun(name string, n int) string {
	if n <= 0 {
		return ""
	}
	return c.styleGlyph(name, strings.Repeat(c.rawGlyph(name), n))
}

func (c Config) styleGlyph(name, symbol string) string {
	if c.Plain {
		return symbol
	}
	switch glyphCategories[name] {
	case categoryPrimary:
		return console.StyleFormat(symbol, c.PrimaryStyle...)
	case categorySecondary:
		return console.StyleFormat(symbol, c.SecondaryStyle...)
	default:
		return symbol
	}
}

// rawGlyph returns the unstyled symbol, falling back to the default set
// for names the config leaves empty.
func (c Config) rawGlyph(name string) string {
	if symbol, ok := c.Glyphs[name]; ok && symbol != "" {
		return symbol
	}
	if c.ASCII {
		return ASCIIConfig().Glyphs[name]
	}
	return DefaultConfig().Glyphs[name]
}

// style applies styles unless the config is plain.
func (c Config) style(text string, styles ...string) string {
	if c.Plain {
		return text
	}
	return console.StyleFormat(text, styles...)
}
