package project

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"stylist/internal/rules"
)

// Config is the parsed stylist.toml manifest.
type Config struct {
	Style StyleConfig       `toml:"style"`
	Rules map[string]string `toml:"rules"`
}

// StyleConfig is the [style] table.
type StyleConfig struct {
	// Indent is the indentation unit re-flow uses. Empty means four spaces.
	Indent string `toml:"indent"`
	// MaxFindings caps findings per evaluation pass. Zero means the default.
	MaxFindings int `toml:"max_findings"`
	// Jobs bounds worker parallelism. Zero means one per CPU.
	Jobs int `toml:"jobs"`
	// NoCache disables the on-disk findings cache.
	NoCache bool `toml:"no_cache"`
}

// DefaultConfig returns the configuration used without a manifest.
func DefaultConfig() *Config {
	return &Config{Rules: make(map[string]string)}
}

// LoadConfig reads and parses one stylist.toml.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir finds the nearest manifest above startDir and loads it.
// Returns the defaults when no manifest exists.
func LoadFromDir(startDir string) (*Config, string, error) {
	path, ok, err := FindStylistToml(startDir)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Settings converts the [rules] table into engine settings. Values are a
// severity name or "off"; anything else is an error naming the rule.
func (c *Config) Settings(catalog *rules.Catalog) (*rules.Settings, error) {
	s := rules.NewSettings()
	for id, value := range c.Rules {
		rule := catalog.Get(rules.ID(id))
		if rule == nil {
			return nil, fmt.Errorf("stylist.toml: unknown rule %q", id)
		}
		if value == "off" {
			s.Enabled[rule.ID] = false
			continue
		}
		if value == "on" {
			s.Enabled[rule.ID] = true
			continue
		}
		sev, ok := rules.ParseSeverity(value)
		if !ok {
			return nil, fmt.Errorf("stylist.toml: rule %q: want a severity, \"on\" or \"off\", got %q", id, value)
		}
		s.Enabled[rule.ID] = true
		s.Severity[rule.ID] = sev
	}
	return s, nil
}
