package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/stickyscroll/retained"
)

// ConfigFile is the project configuration file name.
const ConfigFile = "sticky.toml"

// ProjectConfig represents the sticky.toml configuration file
type ProjectConfig struct {
	Sticky retained.StickyConfig `toml:"sticky"`
	Demo   DemoConfig            `toml:"demo"`
}

// DemoConfig describes the sectioned list the CLI commands operate on.
type DemoConfig struct {
	// Viewport size in pixels
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`

	// Padding as [top, right, bottom, left]
	Padding []float32 `toml:"padding"`

	// Pixels between rows
	Gap float32 `toml:"gap"`

	Sections []SectionConfig `toml:"section"`
}

// SectionConfig is one header plus its rows.
type SectionConfig struct {
	Title        string  `toml:"title"`
	Tag          string  `toml:"tag"`
	HeaderHeight float32 `toml:"header_height"`
	Rows         int     `toml:"rows"`
	RowHeight    float32 `toml:"row_height"`

	// Header background (#RRGGBB)
	Color string `toml:"color"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Sticky: retained.DefaultStickyConfig(),
		Demo: DemoConfig{
			Width:   360,
			Height:  640,
			Padding: []float32{0, 0, 0, 0},
			Sections: []SectionConfig{
				{Title: "A", Tag: "sticky", HeaderHeight: 32, Rows: 12, RowHeight: 48, Color: "#1E88E5"},
				{Title: "B", Tag: "sticky-hastransparancy", HeaderHeight: 32, Rows: 8, RowHeight: 48, Color: "#43A047"},
				{Title: "C", Tag: "sticky-nonconstant", HeaderHeight: 32, Rows: 15, RowHeight: 48, Color: "#E53935"},
				{Title: "D", Tag: "sticky", HeaderHeight: 32, Rows: 20, RowHeight: 48, Color: "#8E24AA"},
			},
		},
	}
}

// LoadConfig loads the project configuration from path.
// If path is empty, sticky.toml in the project root is used; if that
// doesn't exist, returns default config
func LoadConfig(path string) (ProjectConfig, error) {
	config := DefaultConfig()

	if path == "" {
		root, err := FindProjectRoot()
		if err != nil {
			return config, err
		}
		path = filepath.Join(root, ConfigFile)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the configuration.
func (c ProjectConfig) Validate() error {
	if err := c.Sticky.Validate(); err != nil {
		return fmt.Errorf("[sticky] %w", err)
	}
	if c.Demo.Width <= 0 || c.Demo.Height <= 0 {
		return fmt.Errorf("[demo] viewport must be positive, got %vx%v", c.Demo.Width, c.Demo.Height)
	}
	if n := len(c.Demo.Padding); n != 0 && n != 4 {
		return fmt.Errorf("[demo] padding needs 4 values, got %d", n)
	}
	for i, s := range c.Demo.Sections {
		if s.HeaderHeight <= 0 || s.Rows < 0 || (s.Rows > 0 && s.RowHeight <= 0) {
			return fmt.Errorf("[demo] section %d (%q) has invalid sizes", i, s.Title)
		}
		if s.Color != "" {
			if _, err := retained.ParseColor(s.Color); err != nil {
				return fmt.Errorf("[demo] section %d: %w", i, err)
			}
		}
	}
	return nil
}

// SaveConfig saves the configuration to path
func SaveConfig(path string, config ProjectConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// FindProjectRoot finds the project root by looking for sticky.toml or go.mod.
// Falls back to the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; {
		if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}
