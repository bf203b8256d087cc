package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Server
	Port string
	Env  string

	// Storage
	DBPath string

	// Update fan-out (optional; disabled when AMQPUrl is empty)
	AMQPUrl      string
	AMQPExchange string

	// Admin endpoints
	AdminSecret string

	// Request throttling
	RateLimitPerMinute int

	// Development seeding of the demo wedding
	SeedDemoData bool
}

var appConfig *Config

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DBPath:       getEnv("DB_PATH", "weddinghub.db"),
		AMQPUrl:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "weddinghub.updates"),
		AdminSecret:  getEnv("ADMIN_SECRET", "dev-only-admin-secret"),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "true") == "true",
	}

	limitStr := getEnv("RATE_LIMIT_PER_MINUTE", "120")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		log.Printf("Warning: invalid RATE_LIMIT_PER_MINUTE value '%s', falling back to 120\n", limitStr)
		limit = 120
	}
	config.RateLimitPerMinute = limit

	appConfig = config
	return config, nil
}

// Get returns the application configuration.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
