package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverBolt     = "bolt"
)

const (
	defaultRateLimit          = "300-M"
	defaultDirectoryCacheSize = 1024
	defaultDirectoryCacheTTL  = 5 * time.Minute
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	StorageDriver  string
	BoltPath       string
	MigrationsPath string

	RateLimit          string
	CORSAllowedOrigins []string

	DirectoryCacheSize int
	DirectoryCacheTTL  time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	v.SetDefault("BOLT_PATH", "data/books.db")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DIRECTORY_CACHE_SIZE", defaultDirectoryCacheSize)
	v.SetDefault("DIRECTORY_CACHE_TTL", defaultDirectoryCacheTTL.String())

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		StorageDriver:  strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		BoltPath:       v.GetString("BOLT_PATH"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_DRIVER is %q", StorageDriverPostgres)
		}
	case StorageDriverBolt:
		if cfg.BoltPath == "" {
			return nil, fmt.Errorf("BOLT_PATH must be set when STORAGE_DRIVER is %q", StorageDriverBolt)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.DirectoryCacheSize = v.GetInt("DIRECTORY_CACHE_SIZE")
	if cfg.DirectoryCacheSize <= 0 {
		log.Printf("Warning: Invalid value for DIRECTORY_CACHE_SIZE (%d). Defaulting to %d.\n", cfg.DirectoryCacheSize, defaultDirectoryCacheSize)
		cfg.DirectoryCacheSize = defaultDirectoryCacheSize
	}

	ttlStr := v.GetString("DIRECTORY_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = defaultDirectoryCacheTTL
		log.Printf("Warning: Invalid value for DIRECTORY_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl.String())
	}
	cfg.DirectoryCacheTTL = ttl

	return cfg, nil
}
