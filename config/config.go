package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort string
	DBPath     string
	LogLevel   string
	LogFormat  string

	SimilarityThreshold float64
	AmbiguityEpsilon    float64
	WorkStartTime       string // "HH:MM", local time
	GracePeriod         time.Duration
	WorkingDays         string
	Holidays            string

	NotifyWebhookURL string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		DBPath:              getEnv("DB_PATH", "attendance.db"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "console"),
		WorkStartTime:       getEnv("WORK_START_TIME", "09:00"),
		WorkingDays:         getEnv("WORKING_DAYS", "Mon,Tue,Wed,Thu,Fri"),
		Holidays:            getEnv("HOLIDAYS", ""),
		NotifyWebhookURL:    getEnv("NOTIFY_WEBHOOK_URL", ""),
		SimilarityThreshold: 0.95,
		AmbiguityEpsilon:    0.01,
		GracePeriod:         5 * time.Minute,
	}

	if v := os.Getenv("SIMILARITY_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SIMILARITY_THRESHOLD %q: %w", v, err)
		}
		cfg.SimilarityThreshold = f
	}

	if v := os.Getenv("AMBIGUITY_EPSILON"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid AMBIGUITY_EPSILON %q: %w", v, err)
		}
		cfg.AmbiguityEpsilon = f
	}

	if v := os.Getenv("GRACE_PERIOD"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GRACE_PERIOD %q: %w", v, err)
		}
		cfg.GracePeriod = d
	}

	if _, err := time.Parse("15:04", cfg.WorkStartTime); err != nil {
		return nil, fmt.Errorf("invalid WORK_START_TIME %q: %w", cfg.WorkStartTime, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
