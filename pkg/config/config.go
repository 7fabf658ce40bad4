// Package config provides configuration parsing and validation for commit-msg.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the .commit-msg.yaml structure. It only controls how
// results are reported; the rules themselves are fixed.
type Config struct {
	Color    string `yaml:"color,omitempty"    toml:"color,omitempty"`
	Warnings string `yaml:"warnings,omitempty" toml:"warnings,omitempty"`
	Report   string `yaml:"report,omitempty"   toml:"report,omitempty"`
	Verbose  bool   `yaml:"verbose,omitempty"  toml:"verbose,omitempty"`
}

// ConfigFileName is the default name for the configuration file
const ConfigFileName = ".commit-msg.yaml"

// Accepted values
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	// WarningsBlocking makes any warning fail the hook
	WarningsBlocking = "blocking"
	// WarningsAdvisory prints warnings but lets the commit through
	WarningsAdvisory = "advisory"

	ReportFirst = "first"
	ReportAll   = "all"
)

var (
	validColors   = []string{ColorAuto, ColorAlways, ColorNever}
	validWarnings = []string{WarningsBlocking, WarningsAdvisory}
	validReports  = []string{ReportFirst, ReportAll}
)

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Color:    ColorAuto,
		Warnings: WarningsBlocking,
		Report:   ReportFirst,
	}
}

// LoadConfig loads the configuration from file. Files ending in .toml are
// decoded as TOML, everything else as YAML.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = ConfigFileName
	}

	// Basic path validation to address gosec G304
	if hasParentSegment(configPath) {
		return nil, fmt.Errorf("invalid config path: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		configPath = filepath.Join(cwd, configPath)
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- path is validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg := &Config{}
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadConfigOrDefault behaves like LoadConfig but returns DefaultConfig
// when the file does not exist
func LoadConfigOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = ConfigFileName
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadConfig(configPath)
}

// Validate checks every field against its accepted values
func (c *Config) Validate() error {
	if !slices.Contains(validColors, c.Color) {
		return fmt.Errorf("invalid color %q: must be one of %s", c.Color, strings.Join(validColors, ", "))
	}
	if !slices.Contains(validWarnings, c.Warnings) {
		return fmt.Errorf("invalid warnings %q: must be one of %s", c.Warnings, strings.Join(validWarnings, ", "))
	}
	if !slices.Contains(validReports, c.Report) {
		return fmt.Errorf("invalid report %q: must be one of %s", c.Report, strings.Join(validReports, ", "))
	}
	return nil
}

// WarningsBlock reports whether a warning should fail the hook
func (c *Config) WarningsBlock() bool {
	return c.Warnings != WarningsAdvisory
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// hasParentSegment reports whether path climbs out of a directory with ".."
func hasParentSegment(path string) bool {
	return slices.Contains(strings.Split(filepath.ToSlash(path), "/"), "..")
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Color == "" {
		c.Color = defaults.Color
	}
	if c.Warnings == "" {
		c.Warnings = defaults.Warnings
	}
	if c.Report == "" {
		c.Report = defaults.Report
	}
}

