package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Port     string
	MongoURI string
	RedisURL string // optional: enables insights pub/sub notifications

	// Insights sweep job
	SweepEnabled bool
	SweepCron    string // standard 5-field cron expression, UTC

	// Sentiment lexicon override (optional JSON file, hot-reloaded)
	LexiconPath string

	// Recommendation candidate cache TTL in seconds
	CandidateCacheTTL int
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "3002"),
		MongoURI: getEnv("MONGODB_URI", ""),
		RedisURL: getEnv("REDIS_URL", ""),

		SweepEnabled: getBoolEnv("SWEEP_ENABLED", true),
		SweepCron:    getEnv("SWEEP_CRON", "0 3 * * *"),

		LexiconPath: getEnv("SENTIMENT_LEXICON_PATH", ""),

		CandidateCacheTTL: getIntEnv("CANDIDATE_CACHE_TTL_SECONDS", 60),
	}
}

// Environment returns the normalized ENVIRONMENT value.
func Environment() string {
	return strings.ToLower(os.Getenv("ENVIRONMENT"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
