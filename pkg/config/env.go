// Env loader
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	AppEnv        string
	Port          string
	LogLevel      string
	EntriesSource string
	EntriesPath   string
	ContentFormat string
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPassword    string
	DBSchema      string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EntriesSource: getEnv("ENTRIES_SOURCE", SourceFile),
		EntriesPath:   getEnv("ENTRIES_PATH", "data/entries.yaml"),
		ContentFormat: getEnv("CONTENT_FORMAT", "html"),
		DBHost:        getEnv("BLUEPRINT_DB_HOST", "localhost"),
		DBPort:        getEnv("BLUEPRINT_DB_PORT", "5432"),
		DBName:        getEnv("BLUEPRINT_DB_DATABASE", "daily_meditation"),
		DBUser:        getEnv("BLUEPRINT_DB_USERNAME", "postgres"),
		DBPassword:    getEnv("BLUEPRINT_DB_PASSWORD", ""),
		DBSchema:      getEnv("BLUEPRINT_DB_SCHEMA", "public"),
	}

	return cfg
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.EntriesSource {
	case SourceFile:
		if c.EntriesPath == "" {
			return fmt.Errorf("ENTRIES_PATH is required when ENTRIES_SOURCE=%s", SourceFile)
		}
	case SourcePostgres:
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("BLUEPRINT_DB_HOST and BLUEPRINT_DB_DATABASE are required when ENTRIES_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("invalid ENTRIES_SOURCE %q: must be one of %s, %s", c.EntriesSource, SourceFile, SourcePostgres)
	}

	switch c.ContentFormat {
	case "html", "markdown":
	default:
		return fmt.Errorf("invalid CONTENT_FORMAT %q: must be html or markdown", c.ContentFormat)
	}

	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
