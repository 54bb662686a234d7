package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AllEntities lists every entity name the service knows how to mount
var AllEntities = []string{"a", "b", "c", "d", "eds-application"}

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port           string
	AppName        string
	Entities       []string
	RequestTimeout time.Duration
	LogLevel       string

	// Database configuration
	DBType            string // mysql, mariadb, postgres, sqlite, sqlite-pure, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	AutoMigrate       bool

	// Authorizer configuration, optional
	AuthzURL      string
	AuthzClientID string
}

// Load loads configuration from environment variables.
// If ENV_FILE is set, that file is loaded first without overriding the existing environment.
func Load() (*Config, error) {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		AppName:           getEnv("APP_NAME", "myApp"),
		Entities:          getEnvAsList("ENTITIES", AllEntities),
		RequestTimeout:    time.Duration(getEnvAsInt("REQUEST_TIMEOUT", 30)) * time.Second,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DBType:            getEnv("DB_TYPE", "sqlite"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		AutoMigrate:       getEnvAsBool("AUTO_MIGRATE", true),
		AuthzURL:          getEnv("AUTHZ_URL", ""),
		AuthzClientID:     getEnv("AUTHZ_CLIENT_ID", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and cross-field constraints
func (c *Config) Validate() error {
	if c.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if !isFileDB(c.DBType) && c.DBUser == "" {
		return fmt.Errorf("DB_USER is required for DB_TYPE %s", c.DBType)
	}
	if (c.AuthzURL == "") != (c.AuthzClientID == "") {
		return fmt.Errorf("AUTHZ_URL and AUTHZ_CLIENT_ID must be set together")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	for _, name := range c.Entities {
		if !isKnownEntity(name) {
			return fmt.Errorf("unknown entity %q in ENTITIES", name)
		}
	}
	return nil
}

// AuthEnabled reports whether write routes are guarded by the Authorizer
func (c *Config) AuthEnabled() bool {
	return c.AuthzURL != ""
}

// HasEntity reports whether the named entity is mounted
func (c *Config) HasEntity(name string) bool {
	for _, e := range c.Entities {
		if e == name {
			return true
		}
	}
	return false
}

func isFileDB(dbType string) bool {
	return dbType == "sqlite" || dbType == "sqlite-pure"
}

func isKnownEntity(name string) bool {
	for _, e := range AllEntities {
		if e == name {
			return true
		}
	}
	return false
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty items
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return append([]string(nil), defaultValue...)
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, strings.ToLower(v))
		}
	}
	return out
}
