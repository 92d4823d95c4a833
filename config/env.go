package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CartStoreMemory   = "memory"
	CartStoreRedis    = "redis"
	CartStorePostgres = "postgres"

	CatalogStatic   = "static"
	CatalogPostgres = "postgres"

	defaultSessionSecret = "secret"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	RedisURL      string
	RedisAddr     string
	RedisPassword string

	CartStore     string
	CartTTL       time.Duration
	CartIdleTTL   time.Duration
	CatalogSource string

	SessionSecret string
	SessionExpiry time.Duration
	OriginURL     string
	RatingSeed    uint64

	MigrationDir string
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	envFileLoaded := godotenv.Load() == nil

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     getEnv("APP_PORT", getEnv("PORT", "8082")),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5454"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "petal_pink"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CartStore:     strings.ToLower(getEnv("CART_STORE", CartStoreMemory)),
		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", CatalogStatic)),

		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		OriginURL:     os.Getenv("ORIGIN_URL"),
		MigrationDir:  getEnv("MIGRATION_DIR", "database/migration"),
	}

	var err error
	if cfg.CartTTL, err = getDuration("CART_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SessionExpiry, err = getDuration("SESSION_EXPIRY", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CartIdleTTL, err = getDuration("CART_IDLE_TTL", cfg.SessionExpiry); err != nil {
		return nil, err
	}
	if cfg.RatingSeed, err = strconv.ParseUint(getEnv("RATING_SEED", "42"), 10, 64); err != nil {
		return nil, fmt.Errorf("RATING_SEED: %w", err)
	}

	switch cfg.CartStore {
	case CartStoreMemory, CartStoreRedis, CartStorePostgres:
	default:
		return nil, fmt.Errorf("CART_STORE must be memory, redis or postgres, got %q", cfg.CartStore)
	}
	switch cfg.CatalogSource {
	case CatalogStatic, CatalogPostgres:
	default:
		return nil, fmt.Errorf("CATALOG_SOURCE must be static or postgres, got %q", cfg.CatalogSource)
	}

	// a memory cart dropped before its token expires is lost for good
	if cfg.CartStore == CartStoreMemory && cfg.CartIdleTTL < cfg.SessionExpiry {
		return nil, fmt.Errorf("CART_IDLE_TTL (%s) must not be shorter than SESSION_EXPIRY (%s) with CART_STORE=memory",
			cfg.CartIdleTTL, cfg.SessionExpiry)
	}
	if cfg.IsProduction() && (cfg.SessionSecret == "" || cfg.SessionSecret == defaultSessionSecret) {
		return nil, fmt.Errorf("SESSION_SECRET must be set to a non-default value when APP_ENV=production")
	}

	if !envFileLoaded && cfg.AppEnv != "production" {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found, using system environment variables")
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) NeedsDatabase() bool {
	return c.CartStore == CartStorePostgres || c.CatalogSource == CatalogPostgres
}

// DSN prefers DATABASE_URL over the individual DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
