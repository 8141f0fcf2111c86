// Package config loads typed configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the API process needs from its environment.
type Config struct {
	DatabaseDSN string
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTExpiry   time.Duration
	Port        string
	ImagesDir   string
}

// Load builds a Config from environment variables. Call godotenv.Load
// beforehand if a .env file should be honored.
func Load() (*Config, error) {
	dsn, err := getEnvRequired("DATABASE_DSN")
	if err != nil {
		return nil, err
	}
	secret, err := getEnvRequired("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	return &Config{
		DatabaseDSN: dsn,
		JWTSecret:   secret,
		JWTIssuer:   getEnv("JWT_ISSUER", "https://localhost:7273/"),
		JWTAudience: getEnv("JWT_AUDIENCE", "https://localhost:7273/"),
		JWTExpiry:   parseDuration(getEnv("JWT_EXPIRY", "15m"), 15*time.Minute),
		Port:        getEnv("PORT", "8080"),
		ImagesDir:   getEnv("IMAGES_DIR", "Images"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
