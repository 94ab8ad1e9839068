package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alantheprice/promptkit/pkg/ui"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

const (
	ConfigDirName  = ".promptkit"
	ConfigFileName = "config.yaml"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "PROMPTKIT_CONFIG"
)

// Config is the on-disk prompt appearance.
type Config struct {
	// ASCII swaps the Unicode glyphs for ASCII ones and drops their styles.
	ASCII bool `yaml:"ascii"`
	// EraseScreen clears the screen around every prompt.
	EraseScreen bool `yaml:"erase_screen"`
	// Plain disables all styling.
	Plain bool `yaml:"plain"`
	// Glyphs overrides individual glyphs by name.
	Glyphs map[string]string `yaml:"glyphs,omitempty"`
	// Styles overrides the glyph styles.
	Styles StyleConfig `yaml:"styles,omitempty"`
}

// StyleConfig holds the style names applied to glyph categories.
type StyleConfig struct {
	Primary   []string `yaml:"primary,omitempty"`
	Secondary []string `yaml:"secondary,omitempty"`
}

// NewConfig creates a configuration that leaves every default alone.
func NewConfig() *Config {
	return &Config{
		Glyphs: make(map[string]string),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDirName), nil
}

// GetConfigPath returns the full path to the config file, honouring
// PROMPTKIT_CONFIG.
func GetConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// Load loads the configuration from the default location.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration at path. A missing file yields the
// defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := NewConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Glyphs == nil {
		config.Glyphs = make(map[string]string)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the configuration to the default location.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the configuration to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Validate rejects glyph names the prompts do not draw.
func (c *Config) Validate() error {
	scratch := ui.DefaultConfig()
	for _, name := range c.glyphNames() {
		if err := scratch.SetGlyph(name, c.Glyphs[name]); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the configuration onto base.
func (c *Config) Apply(base ui.Config) (ui.Config, error) {
	cfg := base
	if c.ASCII {
		cfg = ui.ASCIIConfig()
		cfg.Plain = base.Plain
		cfg.EraseScreen = base.EraseScreen
	}
	cfg.EraseScreen = cfg.EraseScreen || c.EraseScreen
	cfg.Plain = cfg.Plain || c.Plain

	for _, name := range c.glyphNames() {
		if err := cfg.SetGlyph(name, c.Glyphs[name]); err != nil {
			return base, err
		}
	}

	var primary, secondary []string
	if len(c.Styles.Primary) > 0 {
		primary = c.Styles.Primary
	}
	if len(c.Styles.Secondary) > 0 {
		secondary = c.Styles.Secondary
	}
	cfg.SetStyles(primary, secondary)
	return cfg, nil
}

// ApplyEnvironment turns styling off when the environment asks for no
// colour (NO_COLOR, CLICOLOR=0) or output is not a colour terminal.
func ApplyEnvironment(cfg ui.Config) ui.Config {
	if NoColor() {
		cfg.Plain = true
	}
	return cfg
}

// NoColor reports whether stdout should stay unstyled.
func NoColor() bool {
	return termenv.EnvColorProfile() == termenv.Ascii
}

func (c *Config) glyphNames() []string {
	names := make([]string, 0, len(c.Glyphs))
	for name := range c.Glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
