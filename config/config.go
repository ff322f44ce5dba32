// Package config loads the service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port     string
	LogLevel string

	// Database
	DBDriver   string
	DBUsername string
	DBPassword string
	DBAddress  string
	DBPort     string
	DBName     string
	SQLitePath string
	DBDebug    bool

	// Requests
	RequestTimeout  time.Duration
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBUsername:      getEnv("DB_USERNAME", ""),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBAddress:       getEnv("DB_ADDRESS", "localhost"),
		DBPort:          getEnv("DB_PORT", "3307"),
		DBName:          getEnv("DB_NAME", "taskdb"),
		SQLitePath:      getEnv("SQLITE_PATH", "tasks.db"),
		DBDebug:         getEnvBool("DB_DEBUG", false),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
		RateLimit:       getEnvFloat("RATE_LIMIT", 2),
		RateBurst:       getEnvInt("RATE_BURST", 20),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
