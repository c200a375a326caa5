// Package config loads application configuration by layering defaults,
// an optional YAML file, and NEXUSGRADE_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/claimkit/nexusgrade/internal/letter"
)

// Config holds process configuration for the CLI.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the slog handler: text or json.
	LogFormat string `koanf:"log_format"`

	// DBPath overrides the default database location. Empty means the
	// store's XDG default.
	DBPath string `koanf:"db_path"`

	// Ruleset is a path to a YAML rule pack. Empty means the embedded
	// default pack.
	Ruleset string `koanf:"ruleset"`

	// Provider overrides LLM provider selection. Empty means discovery
	// from standard API key env vars.
	Provider string `koanf:"provider"`

	// MinLetterChars and MaxLetterChars bound accepted letter length.
	MinLetterChars int `koanf:"min_letter_chars"`
	MaxLetterChars int `koanf:"max_letter_chars"`
}

// New returns a Config with defaults.
func New() *Config {
	lim := letter.DefaultLimits()
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		MinLetterChars: lim.MinChars,
		MaxLetterChars: lim.MaxChars,
	}
}

// LetterLimits returns the configured letter length bounds.
func (c *Config) LetterLimits() letter.Limits {
	return letter.Limits{MinChars: c.MinLetterChars, MaxChars: c.MaxLetterChars}
}

// Load builds a Config by layering sources, lowest precedence first:
//  1. defaults (New)
//  2. YAML file named by NEXUSGRADE_CONFIG, when set
//  3. environment variables (prefix NEXUSGRADE_)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("NEXUSGRADE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// NEXUSGRADE_LOG_LEVEL -> log_level, and so on.
	envProvider := env.Provider("NEXUSGRADE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "nexusgrade_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}

	if c.MinLetterChars < 0 || c.MaxLetterChars < 0 {
		return fmt.Errorf("letter length bounds must not be negative")
	}
	if c.MinLetterChars > 0 && c.MaxLetterChars > 0 && c.MinLetterChars >= c.MaxLetterChars {
		return fmt.Errorf("min_letter_chars %d must be below max_letter_chars %d", c.MinLetterChars, c.MaxLetterChars)
	}

	return nil
}
