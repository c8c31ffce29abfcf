// Package config loads run settings from a YAML file. Command-line flags
// are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is picked up from the working directory when no -c is given.
const DefaultFile = "brewin.yaml"

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config mirrors brewin.yaml.
type Config struct {
	// Trace prints every executed statement with its line index.
	Trace bool `yaml:"trace"`

	// Quiet suppresses program output (print and input prompts).
	Quiet bool `yaml:"quiet"`

	// Verbose enables debug logging of calls and returns.
	Verbose bool `yaml:"verbose"`

	// Color selects diagnostic colouring: auto, always or never.
	Color ColorMode `yaml:"color,omitempty"`

	// MaxSteps aborts runs after this many statements; 0 means unlimited.
	MaxSteps int `yaml:"max_steps,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{Color: ColorAuto}
}

// Load reads path. A missing DefaultFile is not an error; any other missing
// file is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML settings and validates them.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		cfg.Color = ColorAuto
	default:
		return Config{}, fmt.Errorf("invalid color mode %q (want auto, always or never)", cfg.Color)
	}

	if cfg.MaxSteps < 0 {
		return Config{}, fmt.Errorf("max_steps must not be negative, got %d", cfg.MaxSteps)
	}

	return cfg, nil
}
