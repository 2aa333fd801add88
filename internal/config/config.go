package config

import (
	"os"
	"strconv"
)

// Config holds the runtime settings for the server, populated from the
// environment. cmd/server loads a .env file first, so local development can
// keep its settings in a file while deployments use real env vars.
type Config struct {
	Port           string
	DatabasePath   string
	APIKey         string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment, falling back to
// development defaults for anything unset.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8008"),
		DatabasePath:   getEnv("DB_PATH", "sensors.db"),
		APIKey:         getEnv("API_KEY", "development-insecure-key-change-me"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
