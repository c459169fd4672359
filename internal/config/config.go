// Package config loads the CLI settings. Values are layered: built-in
// defaults, then the YAML file, then NAJIA_* environment variables; command
// flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/najia/internal/logging"
)

// Output formats.
const (
	OutputText     = "text"
	OutputJSON     = "json"
	OutputMarkdown = "markdown"
)

// Config holds the CLI settings.
type Config struct {
	LogLevel       string        `yaml:"log_level" env:"NAJIA_LOG_LEVEL"`
	Workers        int           `yaml:"workers" env:"NAJIA_WORKERS"`
	Timeout        time.Duration `yaml:"timeout" env:"NAJIA_TIMEOUT"`
	CommentaryPath string        `yaml:"commentary_path,omitempty" env:"NAJIA_COMMENTARY_PATH"`
	Output         string        `yaml:"output" env:"NAJIA_OUTPUT"`
	Verbose        int           `yaml:"verbose" env:"NAJIA_VERBOSE"`
	// Location is the IANA zone naive dates are read in; empty means local.
	Location string `yaml:"location,omitempty" env:"NAJIA_LOCATION"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Workers:  4,
		Timeout:  30 * time.Second,
		Output:   OutputText,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/najia/config.yaml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "najia", "config.yaml"), nil
}

// Load layers the file at path and the environment over the defaults.
// An empty path means DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file yet: defaults apply.
	default:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputMarkdown:
	default:
		return fmt.Errorf("config: unknown output %q (text, json, markdown)", c.Output)
	}
	if c.Verbose < 0 || c.Verbose > 2 {
		return fmt.Errorf("config: verbose must be 0, 1 or 2, got %d", c.Verbose)
	}
	if _, err := c.TimeLocation(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// TimeLocation resolves Location.
func (c Config) TimeLocation() (*time.Location, error) {
	if c.Location == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Location)
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
