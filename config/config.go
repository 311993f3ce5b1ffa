package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port       string
	LogLevel   string
	RedisAddr  string
	CacheTTL   time.Duration
	RateLimit  int
	RateWindow time.Duration
}

// NewConfig loads configuration from environment variables. RedisAddr is
// optional; an empty value selects the in-memory cache.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	limit, err := strconv.Atoi(getEnv("RATE_LIMIT", "30"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %q", getEnv("RATE_LIMIT", "30"))
	}
	cfg.RateLimit = limit

	window, err := time.ParseDuration(getEnv("RATE_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_WINDOW: %w", err)
	}
	cfg.RateWindow = window

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
