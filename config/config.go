package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the dashboard service.
type Config struct {
	// Server
	Port        string
	MetricsPort string

	// Data provider
	ProviderMode string // "api" or "mongo"
	APIBaseURL   string
	APIToken     string
	FetchTimeout time.Duration

	// MongoDB (users collection, and the CRM source in "mongo" mode)
	MongoURI string
	MongoDB  string

	// Auth
	JWTSecret string
}

// Load reads configuration from the environment, with a .env file
// picked up when present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),

		ProviderMode: getEnv("PROVIDER_MODE", "api"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:3000"),
		APIToken:     getEnv("API_TOKEN", ""),
		FetchTimeout: time.Duration(getEnvAsInt("FETCH_TIMEOUT", 15)) * time.Second,

		MongoURI: getEnv("MONGODB_CONNSTRING", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "travel-crm"),

		JWTSecret: getEnv("JWT_SECRET", ""),
	}

	if cfg.ProviderMode != "api" && cfg.ProviderMode != "mongo" {
		return nil, fmt.Errorf("unknown provider mode %q, expected \"api\" or \"mongo\"", cfg.ProviderMode)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return cfg, nil
}

// GetSecret returns a required environment variable or an error when
// it is not set.
func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
