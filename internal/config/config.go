package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Flat-file store
	DataDir string

	// Front-end pages
	StaticDir string

	// Anthropic AI feedback
	AnthropicAPIKey       string
	AnthropicModel        string
	AnalyzeTimeoutSeconds int

	// Optional teacher portal (disabled when DatabaseURL is empty)
	DatabaseURL           string
	JWTSecret             string
	ApprovedTeacherDomain string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                  getEnvOrDefault("PORT", "3000"),
		Env:                   getEnvOrDefault("ENV", "development"),
		DataDir:               getEnvOrDefault("DATA_DIR", "./data"),
		StaticDir:             getEnvOrDefault("STATIC_DIR", "./web"),
		AnthropicAPIKey:       getEnvOrDefault("ANTHROPIC_API_KEY", ""),
		AnthropicModel:        getEnvOrDefault("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		AnalyzeTimeoutSeconds: getEnvAsIntOrDefault("ANALYZE_TIMEOUT_SECONDS", 20),
		DatabaseURL:           getEnvOrDefault("DATABASE_URL", ""),
		JWTSecret:             getEnvOrDefault("JWT_SECRET", ""),
		ApprovedTeacherDomain: getEnvOrDefault("APPROVED_TEACHER_DOMAIN", "binus.edu"),
	}

	return cfg
}

// PortalEnabled reports whether the optional database-backed portal should be
// mounted.
func (c *Config) PortalEnabled() bool {
	return c.DatabaseURL != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
