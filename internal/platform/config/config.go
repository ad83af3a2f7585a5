package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool

	// CORS
	AllowedOrigins []string

	// Rate limiting, e.g. "100-M" for 100 requests per minute
	RateLimit string

	// Graceful shutdown window
	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	// Environment variables override .env file values, which override defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	shutdownTimeoutStr := viper.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownTimeoutStr)
	if err != nil {
		shutdownTimeout = 10 * time.Second
		if shutdownTimeoutStr != "" {
			log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownTimeoutStr, shutdownTimeout.String())
		}
	}

	rateLimit := viper.GetString("RATE_LIMIT")
	if rateLimit == "" {
		rateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", rateLimit)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")
	cfg.RateLimit = rateLimit
	cfg.ShutdownTimeout = shutdownTimeout

	return cfg, nil
}
