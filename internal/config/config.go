package config

import (
	"fmt"
	"os"
	"strconv"

	"vocabdrill/internal/domain"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration
type Config struct {
	DataDir   string
	Languages domain.LanguagePair
	Session   SessionConfig
	LogLevel  string
}

// SessionConfig holds drill session limits
type SessionConfig struct {
	MaxWords int
	OldWords int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	maxWords, err := getEnvInt("DRILL_MAX_WORDS", 100)
	if err != nil {
		return nil, err
	}
	oldWords, err := getEnvInt("DRILL_OLD_WORDS", 5)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir: getEnv("DRILL_DATA_DIR", "."),
		Languages: domain.LanguagePair{
			A: getEnv("DRILL_LANG_A", "Fr"),
			B: getEnv("DRILL_LANG_B", "De"),
		},
		Session: SessionConfig{
			MaxWords: maxWords,
			OldWords: oldWords,
		},
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}

	// Validate fields
	if cfg.Session.MaxWords <= 0 {
		return nil, fmt.Errorf("DRILL_MAX_WORDS must be positive, got %d", cfg.Session.MaxWords)
	}
	if cfg.Session.OldWords < 0 {
		return nil, fmt.Errorf("DRILL_OLD_WORDS must not be negative, got %d", cfg.Session.OldWords)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	return cfg, nil
}

// Level returns the zap level named by LogLevel
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
