package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from
// environment variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	CHART_DEFAULT_HEIGHT=500
//	CACHE_TTL_SECONDS=300
//	CACHE_MAX_ENTRIES=256
type Config struct {
	Server ServerConfig // HTTP server configuration
	Chart  ChartConfig  // Chart engine defaults
	Cache  CacheConfig  // Figure memoization settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// ChartConfig carries the engine defaults applied when a request leaves
// an option blank.
type ChartConfig struct {
	DefaultHeight int // Figure height in pixels when the request has none
}

// CacheConfig controls the collaborator-side figure cache.
//
// Fields:
//   - TTL: how long a memoized figure stays valid. Zero disables expiry.
//   - MaxEntries: hard cap on cached figures.
type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the
// application instead of reloading environment variables per call site.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - validateConfig() terminates the app with a descriptive message
//     when required values are missing or nonsensical.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CHART_DEFAULT_HEIGHT", 500)
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("CACHE_MAX_ENTRIES", 256)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Chart: ChartConfig{
			DefaultHeight: viper.GetInt("CHART_DEFAULT_HEIGHT"),
		},
		Cache: CacheConfig{
			TTL:        time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
			MaxEntries: viper.GetInt("CACHE_MAX_ENTRIES"),
		},
	}

	validateConfig()
}

// validateConfig ensures required values are present and sane, and
// terminates the application otherwise. This avoids late runtime
// failures caused by incomplete configuration.
func validateConfig() {
	var problems []string

	if AppConfig.Server.Port == "" {
		problems = append(problems, "SERVER_PORT must be set")
	}
	if AppConfig.Chart.DefaultHeight <= 0 {
		problems = append(problems, "CHART_DEFAULT_HEIGHT must be positive")
	}
	if AppConfig.Cache.TTL < 0 {
		problems = append(problems, "CACHE_TTL_SECONDS must not be negative")
	}
	if AppConfig.Cache.MaxEntries <= 0 {
		problems = append(problems, "CACHE_MAX_ENTRIES must be positive")
	}

	if len(problems) > 0 {
		log.Fatalf("invalid configuration: %v\n", problems)
	}
}
