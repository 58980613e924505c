// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is malformed, startup stops there.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the job engine.
type Config struct {
	Port                   int
	DatabaseURL            string // empty selects the in-memory catalog
	RedisURL               string // empty disables the embedding cache
	GeminiAPIKey           string // empty selects the fallback scoring variant
	GeminiEmbeddingModel   string
	AggregateIntervalHours int // how often the scheduled aggregation fires
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	port := 8080
	if s := os.Getenv("PORT"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > 65535 {
			return nil, fmt.Errorf("PORT must be a valid port number, got %q", s)
		}
		port = v
	}

	interval := 6
	if s := os.Getenv("AGGREGATE_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("AGGREGATE_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	return &Config{
		Port:                   port,
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		RedisURL:               os.Getenv("REDIS_URL"),
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GeminiEmbeddingModel:   os.Getenv("GEMINI_EMBEDDING_MODEL"),
		AggregateIntervalHours: interval,
	}, nil
}
