package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pmurley/rugby-stats/internal/models"
)

type Config struct {
	LogLevel      string
	DataDir       string
	SetNames      []string
	CacheDuration time.Duration
	WatchInterval time.Duration
}

func Load() (*Config, error) {
	cacheDuration := 5 * time.Minute
	if d := os.Getenv("CACHE_DURATION_MINUTES"); d != "" {
		if minutes, err := strconv.Atoi(d); err == nil && minutes > 0 {
			cacheDuration = time.Duration(minutes) * time.Minute
		}
	}

	watchInterval := time.Minute
	if d := os.Getenv("WATCH_INTERVAL_SECONDS"); d != "" {
		if seconds, err := strconv.Atoi(d); err == nil && seconds > 0 {
			watchInterval = time.Duration(seconds) * time.Second
		}
	}

	setNames := models.DefaultSetNames
	if s := os.Getenv("RETENTION_SETS"); s != "" {
		setNames = SplitList(s)
	}

	return &Config{
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		DataDir:       getEnvOrDefault("DATA_DIR", "./data"),
		SetNames:      setNames,
		CacheDuration: cacheDuration,
		WatchInterval: watchInterval,
	}, nil
}

// SplitList splits a comma separated list, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
