// Package config loads the startup settings of the keyboard from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/vkeyboard/pkg/display"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete application configuration. It only seeds startup
// values; nothing changed at runtime is written back.
type Config struct {
	Window struct {
		Width     int `yaml:"width"`
		Height    int `yaml:"height"`
		MinWidth  int `yaml:"min_width"`
		MinHeight int `yaml:"min_height"`
	} `yaml:"window"`
	Appearance struct {
		Dark     bool    `yaml:"dark"`
		FontSize float64 `yaml:"font_size"`
	} `yaml:"appearance"`
	Layout struct {
		File string `yaml:"file"`
	} `yaml:"layout"`
	Logging struct {
		Verbose    bool   `yaml:"verbose"`
		Dir        string `yaml:"dir"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"logging"`
}

// Default returns a configuration with the stock window size and a light
// theme at the base font size.
func Default() *Config {
	c := &Config{}

	c.Window.Width = 800
	c.Window.Height = 300
	c.Window.MinWidth = 600
	c.Window.MinHeight = 200

	c.Appearance.Dark = false
	c.Appearance.FontSize = display.BaseFontSize

	c.Logging.MaxSize = 2
	c.Logging.MaxBackups = 3
	c.Logging.MaxAge = 28

	return c
}

// DefaultPath returns the platform config file location:
// %APPDATA%\vkeyboard\config.yaml on Windows, ~/.config/vkeyboard/config.yaml
// elsewhere.
func DefaultPath() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "vkeyboard", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vkeyboard", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	if c.Window.MinWidth < 0 || c.Window.MinHeight < 0 {
		return fmt.Errorf("%w: minimum window size must not be negative", ErrInvalid)
	}
	if c.Window.MinWidth > c.Window.Width || c.Window.MinHeight > c.Window.Height {
		return fmt.Errorf("%w: minimum window size exceeds window size", ErrInvalid)
	}
	fs := c.Appearance.FontSize
	if fs < display.MinFontSize || fs > display.MaxFontSize {
		return fmt.Errorf("%w: font_size %.1f outside %.0f-%.0f", ErrInvalid, fs, display.MinFontSize, display.MaxFontSize)
	}
	if !display.OnGrid(fs) {
		return fmt.Errorf("%w: font_size %.1f is not %.0f plus a multiple of %.0f", ErrInvalid, fs, display.MinFontSize, display.SizeIncrement)
	}
	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAge < 0 {
		return fmt.Errorf("%w: logging limits must not be negative", ErrInvalid)
	}
	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// String renders the configuration as YAML.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(data)
}
