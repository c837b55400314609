// Package config loads the toggle's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bekkevard/chatgpt-toggle/internal/focus"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Zero fields take defaults.
type Config struct {
	App        string        `yaml:"app"         json:"app"`
	AppPath    string        `yaml:"app_path"    json:"app_path"`
	URL        string        `yaml:"url"         json:"url"`
	Markers    []string      `yaml:"markers"     json:"markers"`
	SoleWindow string        `yaml:"sole_window" json:"sole_window"`
	Timeout    time.Duration `yaml:"timeout"     json:"timeout"`
	LogLevel   string        `yaml:"log_level"   json:"log_level"`
	Backend    string        `yaml:"backend"     json:"backend"`
}

// Default returns the built-in configuration: the ChatGPT web app in Comet.
func Default() Config {
	return Config{
		App:        "Comet",
		AppPath:    "/Applications/Comet.app/Contents/MacOS/Comet",
		URL:        "https://chatgpt.com",
		Markers:    []string{"chatgpt", "chat.openai.com"},
		SoleWindow: string(focus.SoleWindowHide),
		LogLevel:   "warn",
		Backend:    "auto",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/chatgpt-toggle/config.yaml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "chatgpt-toggle", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.App == "" {
		return fmt.Errorf("app must not be empty")
	}
	hasMarker := false
	for _, m := range c.Markers {
		if m != "" {
			hasMarker = true
			break
		}
	}
	if !hasMarker {
		return fmt.Errorf("markers must contain at least one non-empty title substring")
	}
	if _, err := focus.ParseSoleWindowPolicy(c.SoleWindow); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// FocusOptions converts the config for a focus.Toggler.
func (c Config) FocusOptions() focus.Options {
	sole, _ := focus.ParseSoleWindowPolicy(c.SoleWindow)
	return focus.Options{
		Target:     focus.Target{App: c.App, Markers: c.Markers},
		AppPath:    c.AppPath,
		URL:        c.URL,
		SoleWindow: sole,
	}
}
