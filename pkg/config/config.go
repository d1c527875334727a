package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode selects when matches are highlighted.
type ColorMode string

// Supported color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds all configuration for grrs
type Config struct {
	// Output settings
	LineNumber     bool      `yaml:"line_number" env:"GRRS_LINE_NUMBER"`
	Color          ColorMode `yaml:"color" env:"GRRS_COLOR"`
	NoMatchMessage string    `yaml:"no_match_message" env:"GRRS_NO_MATCH_MESSAGE"`

	// Diagnostics
	Verbose bool      `yaml:"verbose" env:"GRRS_VERBOSE"`
	Log     LogConfig `yaml:"log"`
}

// LogConfig holds settings for the optional rotating log file
type LogConfig struct {
	File       string `yaml:"file" env:"GRRS_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Color:          ColorAuto,
		NoMatchMessage: "no match",
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}

// Load loads configuration from the default file location and environment
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from path, falling back to the default
// location when path is empty. A missing file is not an error unless the
// path was given explicitly.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = getConfigPath()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if path := os.Getenv("GRRS_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "grrs", "config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "grrs", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from the user (flag, env var or standard location)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("GRRS_VERBOSE"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GRRS_VERBOSE value: %w", err)
		}
		cfg.Verbose = b
	}

	if v := os.Getenv("GRRS_LINE_NUMBER"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GRRS_LINE_NUMBER value: %w", err)
		}
		cfg.LineNumber = b
	}

	if color := os.Getenv("GRRS_COLOR"); color != "" {
		cfg.Color = ColorMode(strings.ToLower(color))
	}

	if msg, ok := os.LookupEnv("GRRS_NO_MATCH_MESSAGE"); ok {
		cfg.NoMatchMessage = msg
	}

	if file := os.Getenv("GRRS_LOG_FILE"); file != "" {
		cfg.Log.File = file
	}

	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%q (use true/false)", v)
	}
}

// ParseColorMode converts a flag or config value into a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	mode := ColorMode(strings.ToLower(s))
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use auto, always or never)", s)
	}
}

// Validate checks the configuration for invalid values and normalizes the
// color mode.
func (c *Config) Validate() error {
	mode, err := ParseColorMode(string(c.Color))
	if err != nil {
		return err
	}
	c.Color = mode

	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must be non-negative")
	}

	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must be non-negative")
	}

	if c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log.max_age_days must be non-negative")
	}

	return nil
}
