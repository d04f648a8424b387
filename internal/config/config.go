// Package config loads and validates the mdalerts CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jquenard/go-mdalerts/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrEmptyLabelKey   = errors.New("label override key cannot be empty")
)

// Field length limits.
const (
	MaxStyleLength = 256 // style name or path
	MaxLabelLength = 100 // alert title label
	MaxTagLength   = 50  // alert tag name
)

// Config holds all configuration for the CLI.
type Config struct {
	Input    InputConfig       `yaml:"input"`
	Output   OutputConfig      `yaml:"output"`
	Style    StyleConfig       `yaml:"style"`
	Document DocumentConfig    `yaml:"document"`
	Labels   map[string]string `yaml:"labels"` // per-tag label overrides, e.g. NOTE: Remarque
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// StyleConfig defines preview styling options.
type StyleConfig struct {
	Name string `yaml:"name"` // Style name, file path, or raw CSS (empty = no CSS)
}

// DocumentConfig defines output document options.
type DocumentConfig struct {
	Full bool `yaml:"full"` // Wrap output in a complete HTML5 document
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		configPath, err = findConfig(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, configPath)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfig searches standard locations for a named config file.
// Search order: current directory, then ~/.config/mdalerts/.
func findConfig(name string) (string, error) {
	candidates := []string{name + ".yaml", name + ".yml"}

	if home, err := os.UserHomeDir(); err == nil {
		for _, c := range []string{name + ".yaml", name + ".yml"} {
			candidates = append(candidates, filepath.Join(home, ".config", "mdalerts", c))
		}
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %q (searched %s)", ErrConfigNotFound, name, strings.Join(candidates, ", "))
}

// Validate checks field lengths and label override shape.
// Unknown tags are caught later by the transformer, which owns the table.
func (c *Config) Validate() error {
	if len(c.Style.Name) > MaxStyleLength {
		return fmt.Errorf("%w: style.name (%d chars, max %d)", ErrFieldTooLong, len(c.Style.Name), MaxStyleLength)
	}

	for tag, label := range c.Labels {
		if tag == "" {
			return ErrEmptyLabelKey
		}
		if len(tag) > MaxTagLength {
			return fmt.Errorf("%w: label key %q (max %d)", ErrFieldTooLong, tag, MaxTagLength)
		}
		if len(label) > MaxLabelLength {
			return fmt.Errorf("%w: label for %q (%d chars, max %d)", ErrFieldTooLong, tag, len(label), MaxLabelLength)
		}
	}

	return nil
}
