package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	TablePrefix string
	// Database selection
	DatabaseType      string // sqlite | postgres | d1
	DatabaseURL       string // Postgres connection string or SQLite file path
	LocalDatabasePath string // Embedded SQLite used in dev and prerender
	Prerender         bool   // Forces the local database like a static build would
	// Content
	ContentConfig string // Path to the collections YAML file
	ContentDir    string // Default import root for cmd/seed
	// Auth (optional; enables JWT checks on write routes)
	JWKSURL string
	// Logging
	LogDir      string
	LogMaxFiles int
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:       getTablePrefix(env),
		DatabaseType:      getEnv("DATABASE_TYPE", "sqlite"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		LocalDatabasePath: getEnv("LOCAL_DATABASE_PATH", ".data/content.sqlite"),
		Prerender:         getEnv("PRERENDER", "false") == "true",
		ContentConfig:     getEnv("CONTENT_CONFIG", "content.config.yaml"),
		ContentDir:        getEnv("CONTENT_DIR", "content"),
		JWKSURL:           getEnv("JWKS_URL", ""),
		LogDir:            getEnv("LOG_DIR", ""),
		LogMaxFiles:       getEnvInt("LOG_MAX_FILES", 10),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
