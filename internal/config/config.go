package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Database
	DatabasePath string

	// VecLite draft index
	VecLitePath   string // Path to VecLite database (default: data/drafts.veclite, empty disables)
	VecLiteConfig string // Optional veclite.yaml with embedding provider settings

	// Gemini API
	GeminiAPIKey   string
	GeminiModel    string
	GeminiJSONMode bool
	GeminiBaseURL  string

	// Templates
	TemplatesPath string

	// Generation
	GenerationTimeout time.Duration
	HashtagCount      int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath:  getEnv("DATABASE_PATH", "data/studio.db"),
		VecLitePath:   os.Getenv("VECLITE_PATH"),
		VecLiteConfig: getEnv("VECLITE_CONFIG", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
		TemplatesPath: getEnv("TEMPLATES_PATH", "templates.yaml"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	// An explicitly empty VECLITE_PATH disables the index.
	if _, set := os.LookupEnv("VECLITE_PATH"); !set {
		cfg.VecLitePath = "data/drafts.veclite"
	}

	var err error
	cfg.GeminiJSONMode, err = strconv.ParseBool(getEnv("GEMINI_JSON_MODE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEMINI_JSON_MODE: %w", err)
	}

	cfg.GenerationTimeout, err = time.ParseDuration(getEnv("GENERATION_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATION_TIMEOUT: %w", err)
	}

	cfg.HashtagCount, err = strconv.Atoi(getEnv("HASHTAG_COUNT", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid HASHTAG_COUNT: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.HashtagCount <= 0 {
		return fmt.Errorf("HASHTAG_COUNT must be positive, got %d", c.HashtagCount)
	}
	if c.GenerationTimeout < 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must not be negative")
	}
	return nil
}

// ValidateForGeneration checks configuration needed for AI generation.
// A missing key is not an error: generation falls back to templates.
func (c *Config) ValidateForGeneration() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.GeminiAPIKey != "" && c.GeminiModel == "" {
		return fmt.Errorf("GEMINI_MODEL is required when GEMINI_API_KEY is set")
	}
	return nil
}

// ValidateForVecLite checks configuration needed for the draft index.
func (c *Config) ValidateForVecLite() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.VecLitePath == "" {
		return fmt.Errorf("VECLITE_PATH is required for similarity search")
	}
	return nil
}

// AIEnabled reports whether an API key is configured.
func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
