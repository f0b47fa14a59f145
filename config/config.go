package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-secret-key"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost  string
	ServerPort  string
	CORSOrigins []string

	// Database configuration. The embedded SQLite store is the default;
	// DB_DRIVER=postgres switches to a server database using the DB_* fields.
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT configuration
	JWTSecret string

	// Redis configuration (optional; lookup cache and rate limiting)
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Nutrition lookup API (optional; static table still works without it)
	LookupBaseURL  string
	LookupAppID    string
	LookupAppKey   string
	LookupCacheTTL time.Duration

	// Image storage: local directory by default, S3 when a bucket is set
	UploadDir string
	S3Bucket  string
}

// LoadConfig creates a new Config instance from environment variables,
// reading an optional .env file first.
func LoadConfig() (*Config, error) {
	// .env is a development convenience; deployments set variables directly.
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("LOOKUP_CACHE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOOKUP_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		ServerHost:  getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "calorie_tracker.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "calorie_tracker"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		LookupBaseURL:  os.Getenv("LOOKUP_BASE_URL"),
		LookupAppID:    os.Getenv("LOOKUP_APP_ID"),
		LookupAppKey:   os.Getenv("LOOKUP_APP_KEY"),
		LookupCacheTTL: cacheTTL,

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// RedisConfigured reports whether a Redis endpoint was provided. Redis is
// never required; features backed by it degrade when absent.
func (c *Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// S3Configured reports whether image uploads should go to S3 instead of
// the local upload directory.
func (c *Config) S3Configured() bool {
	return c.S3Bucket != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
