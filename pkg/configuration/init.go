package configuration

import (
	"errors"
	"fmt"
	"os"

	"github.com/alantheprice/promptkit/pkg/ui"
)

// Starter returns a configuration that spells out every default glyph and
// style, as a template for editing.
func Starter() *Config {
	defaults := ui.DefaultConfig()
	config := NewConfig()
	for _, name := range ui.GlyphNames() {
		config.Glyphs[name] = defaults.Glyphs[name]
	}
	config.Styles = StyleConfig{
		Primary:   append([]string{}, defaults.PrimaryStyle...),
		Secondary: append([]string{}, defaults.SecondaryStyle...),
	}
	return config
}

// Initialize writes the starter configuration to path unless a file is
// already there. created reports whether it wrote one.
func Initialize(path string) (created bool, err error) {
	if path == "" {
		if path, err = GetConfigPath(); err != nil {
			return false, err
		}
	}

	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to access config file: %w", err)
	}

	if err := Starter().SaveTo(path); err != nil {
		return false, err
	}
	return true, nil
}
