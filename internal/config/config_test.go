package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("log_format = %q, want text", cfg.LogFormat)
	}
	if cfg.MinLetterChars <= 0 || cfg.MaxLetterChars <= cfg.MinLetterChars {
		t.Errorf("letter bounds %d/%d not sensible", cfg.MinLetterChars, cfg.MaxLetterChars)
	}
	if cfg.DBPath != "" || cfg.Ruleset != "" || cfg.Provider != "" {
		t.Error("path overrides should default to empty")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NEXUSGRADE_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NEXUSGRADE_CONFIG", "")
	t.Setenv("NEXUSGRADE_LOG_LEVEL", "debug")
	t.Setenv("NEXUSGRADE_MIN_LETTER_CHARS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.LogLevel)
	}
	if cfg.MinLetterChars != 50 {
		t.Errorf("min_letter_chars = %d, want 50", cfg.MinLetterChars)
	}
}

func TestLoad_FileLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexusgrade.yaml")
	doc := "log_level: warn\nruleset: /etc/nexusgrade/pack.yaml\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NEXUSGRADE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log_level = %q, want warn", cfg.LogLevel)
	}
	if cfg.Ruleset != "/etc/nexusgrade/pack.yaml" {
		t.Errorf("ruleset = %q, want file value", cfg.Ruleset)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexusgrade.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NEXUSGRADE_CONFIG", path)
	t.Setenv("NEXUSGRADE_LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("log_level = %q, want env to win", cfg.LogLevel)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad log level", map[string]string{"NEXUSGRADE_LOG_LEVEL": "loud"}},
		{"bad log format", map[string]string{"NEXUSGRADE_LOG_FORMAT": "xml"}},
		{"negative min", map[string]string{"NEXUSGRADE_MIN_LETTER_CHARS": "-5"}},
		{"inverted bounds", map[string]string{
			"NEXUSGRADE_MIN_LETTER_CHARS": "500",
			"NEXUSGRADE_MAX_LETTER_CHARS": "100",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NEXUSGRADE_CONFIG", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestConfig_LetterLimits(t *testing.T) {
	cfg := &Config{MinLetterChars: 10, MaxLetterChars: 20}
	lim := cfg.LetterLimits()
	if lim.MinChars != 10 || lim.MaxChars != 20 {
		t.Errorf("limits = %+v", lim)
	}
}
