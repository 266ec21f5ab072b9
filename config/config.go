// Package config centralises environment configuration and database
// setup.
package config

import (
	"os"
)

// Config captures runtime configuration values, with defaults suited to
// local development.
type Config struct {
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// Load reads environment variables into Config. The JWT secret is read
// from JWT_SECRET directly where tokens are issued and verified.
func Load() Config {
	return Config{
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "octofit"),
		DBPassword: getEnv("DB_PASSWORD", "octofit"),
		DBName:     getEnv("DB_NAME", "octofit"),
		DBPort:     getEnv("DB_PORT", "5432"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
