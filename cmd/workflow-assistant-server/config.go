package main

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings, loaded from the environment with an
// optional .env file for local development.
type Config struct {
	Addr           string
	BackendURL     string
	BackendTimeout time.Duration
	GinReleaseMode bool
}

func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment only")
	}

	cfg := Config{
		Addr:           getEnv("WORKFLOW_ASSISTANT_ADDR", ":8080"),
		BackendURL:     getEnv("WORKFLOW_ASSISTANT_BACKEND_URL", ""),
		BackendTimeout: getDuration("WORKFLOW_ASSISTANT_BACKEND_TIMEOUT", 10*time.Second),
		GinReleaseMode: getBool("WORKFLOW_ASSISTANT_RELEASE", false),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}
