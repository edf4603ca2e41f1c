// Package config loads settings for the neon command.
//
// Settings come from, in increasing priority: built-in defaults, a TOML
// file, NEON_* environment variables, and command-line flags (applied by
// the caller).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/afero"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = ".neon.toml"

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "neon"

// Output formats for syntax trees.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the neon settings.
type Config struct {
	Output    string `toml:"output" envconfig:"OUTPUT"`
	ShowTree  bool   `toml:"show_tree" envconfig:"SHOW_TREE"`
	Color     string `toml:"color" envconfig:"COLOR"`
	LogLevel  string `toml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `toml:"log_format" envconfig:"LOG_FORMAT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:    OutputText,
		Color:     ColorAuto,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads the TOML file at path from fs on top of the defaults, then
// applies environment overrides. An empty path means DefaultFile, which may
// be absent; an explicit path must exist.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// no config file
	default:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting with an unknown value.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: must be text, json or yaml", c.Output)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q: must be auto, always or never", c.Color)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be text or json", c.LogFormat)
	}
	return nil
}
