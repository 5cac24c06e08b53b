package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL        string
	JWTSecret          string
	JWTExpiration      time.Duration
	ServerPort         string
	DashboardRangeDays int
	ResetTokenTTL      time.Duration
}

func Load() *Config {
	// Optional .env for local development; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:        getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/worktime"),
		JWTSecret:          getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration:      24 * time.Hour,
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DashboardRangeDays: getEnvInt("DASHBOARD_RANGE_DAYS", 7),
		ResetTokenTTL:      time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
