package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds database configuration.
type Config struct {
	// Path is the location of the SQLite database file.
	Path string
}

// NewConfig creates a new database configuration.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	return &Config{
		Path: getEnv("DB_PATH", "weddinghub.db"),
	}, nil
}

// DSN returns the SQLite connection string. WAL mode keeps readers from
// blocking the single writer; the busy timeout covers writer contention.
func (c *Config) DSN() string {
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", c.Path)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
