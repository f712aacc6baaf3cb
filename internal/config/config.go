package config

import (
	"errors"
	"fmt"
	"os"

	"solarsystem/internal/platform"

	"gopkg.in/yaml.v3"
)

// Config holds all viewer configuration. Every field is optional in the file.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	HUD     bool          `yaml:"hud"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"` // off keeps the frame rate uncapped
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func DefaultConfig() *Config {
	w := platform.DefaultWindowConfig()
	return &Config{
		Window: WindowConfig{
			Title:     w.Title,
			Width:     w.Width,
			Height:    w.Height,
			Resizable: w.Resizable,
			VSync:     w.VSync,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Title == "" {
		errs = append(errs, errors.New("window.title must not be empty"))
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be at least 1x1", c.Window.Width, c.Window.Height))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown logging.level %q", c.Logging.Level))
	}
	return errors.Join(errs...)
}

func (c *Config) WindowConfig() platform.WindowConfig {
	return platform.WindowConfig{
		Title:     c.Window.Title,
		Width:     c.Window.Width,
		Height:    c.Window.Height,
		Resizable: c.Window.Resizable,
		VSync:     c.Window.VSync,
	}
}
