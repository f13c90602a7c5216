package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	Database DatabaseConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	URL string
}

type ReportConfig struct {
	// IdleGrace is how long a report session keeps recomputing after its last
	// subscriber detaches before it parks.
	IdleGrace time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	idleGrace := 5 * time.Second
	if raw := os.Getenv("REPORT_IDLE_GRACE"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			idleGrace = parsed
		}
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Report: ReportConfig{
			IdleGrace: idleGrace,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
