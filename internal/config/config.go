package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env                string
	HTTPAddr           string
	CacheDir           string
	OrphanScanInterval time.Duration
	OTLPEndpoint       string
}

// Load reads configuration from the environment. HTTP_HOST, HTTP_PORT and
// CACHE_DIR have no fallback; a missing value is a startup error.
func Load() (*Config, error) {
	host, err := requireEnv("HTTP_HOST")
	if err != nil {
		return nil, err
	}
	port, err := requireEnv("HTTP_PORT")
	if err != nil {
		return nil, err
	}
	cacheDir, err := requireEnv("CACHE_DIR")
	if err != nil {
		return nil, err
	}

	interval := 1 * time.Minute
	if v := os.Getenv("ORPHAN_SCAN_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse ORPHAN_SCAN_INTERVAL: %w", err)
		}
		interval = parsed
	}

	return &Config{
		Env:                getEnv("ENV", "development"),
		HTTPAddr:           host + ":" + port,
		CacheDir:           cacheDir,
		OrphanScanInterval: interval,
		OTLPEndpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
