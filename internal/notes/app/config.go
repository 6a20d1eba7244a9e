package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AccessTokenSecret  string        // Required outside dev: HS256 secret for access tokens
	RefreshTokenSecret string        // Required outside dev: HS256 secret for refresh tokens
	AccessTokenTTL     time.Duration // Optional: access token lifetime (default: 1h)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./notes.db)
	DatabaseURL    string // Required for postgres: connection string
	RenewalStore   string // Optional: where refresh tokens live, database or redis (default: database)
	RedisURL       string // Required for redis renewal store: redis:// URL

	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	CORSOrigin           string        // Optional: browser origin allowed to call the API (default: http://localhost:3000)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 5000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

var (
	ErrMissingSecret    = errors.New("config: token secret not set")
	ErrSharedSecret     = errors.New("config: access and refresh token secrets must differ")
	ErrUnknownDriver    = errors.New("config: unknown database driver")
	ErrUnknownRenewal   = errors.New("config: unknown renewal store")
	ErrMissingDatabase  = errors.New("config: DATABASE_URL is required for postgres")
	ErrMissingRedisURL  = errors.New("config: REDIS_URL is required for the redis renewal store")
	ErrInvalidAccessTTL = errors.New("config: ACCESS_TOKEN_TTL must be positive")
)

func LoadConfig() Config {
	return Config{
		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		AccessTokenTTL:     getEnvDurationOrDefault("ACCESS_TOKEN_TTL", time.Hour),

		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", "sqlite"),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "notes.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RenewalStore:   getEnvOrDefault("RENEWAL_STORE", "database"),
		RedisURL:       os.Getenv("REDIS_URL"),

		PepperFile:           getEnvOrDefault("PEPPER_FILE", "pepper"),
		CORSOrigin:           getEnvOrDefault("CORS_ORIGIN", "http://localhost:3000"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// IsDev reports whether the service runs in development mode, where missing
// token secrets are generated on startup.
func (c Config) IsDev() bool { return c.Env == "dev" }

// Validate checks the settings that cannot be defaulted. Missing secrets are
// only an error outside dev.
func (c Config) Validate() error {
	if !c.IsDev() && (c.AccessTokenSecret == "" || c.RefreshTokenSecret == "") {
		return ErrMissingSecret
	}
	if c.AccessTokenSecret != "" && c.AccessTokenSecret == c.RefreshTokenSecret {
		return ErrSharedSecret
	}
	if c.AccessTokenTTL <= 0 {
		return ErrInvalidAccessTTL
	}

	switch c.DatabaseDriver {
	case "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			return ErrMissingDatabase
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.DatabaseDriver)
	}

	switch c.RenewalStore {
	case "database":
	case "redis":
		if c.RedisURL == "" {
			return ErrMissingRedisURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenewal, c.RenewalStore)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
