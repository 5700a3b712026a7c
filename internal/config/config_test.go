package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_DIR", "DATABASE_URL", "ANTHROPIC_MODEL"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %q", cfg.Port)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("Expected default data dir ./data, got %q", cfg.DataDir)
	}
	if cfg.AnthropicModel != "claude-sonnet-4-20250514" {
		t.Errorf("Unexpected default model %q", cfg.AnthropicModel)
	}
	if cfg.PortalEnabled() {
		t.Error("Expected portal disabled without DATABASE_URL")
	}
}

func TestPortalEnabled(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/hub"}
	if !cfg.PortalEnabled() {
		t.Error("Expected portal enabled when DATABASE_URL is set")
	}
}
