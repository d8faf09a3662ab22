package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	errInvalidPort           = errors.New("config: invalid PORT number")
	errTimeoutOutOfRange     = errors.New("config: FETCH_TIMEOUT_SECONDS must be 1-120")
	errConcurrencyOutOfRange = errors.New("config: SCAN_CONCURRENCY must be 1-100")
	errNoOrigins             = errors.New("config: CORS_ALLOWED_ORIGINS must list at least one origin")
)

// defaultOrigins are the frontend origins allowed when none are configured.
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"https://ghoststackdesigns.com",
	"https://www.ghoststackdesigns.com",
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port            string
	LogLevel        string
	FetchTimeout    time.Duration
	ScanConcurrency int
	AllowedOrigins  []string
}

// Load reads configuration from the environment (and an optional .env file)
// with sensible defaults.
func Load() (Config, error) {
	_ = godotenv.Load() // missing .env is fine

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FETCH_TIMEOUT_SECONDS", 10)
	v.SetDefault("SCAN_CONCURRENCY", 10)

	cfg := Config{
		Port:            v.GetString("PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		FetchTimeout:    time.Duration(v.GetInt("FETCH_TIMEOUT_SECONDS")) * time.Second,
		ScanConcurrency: v.GetInt("SCAN_CONCURRENCY"),
		AllowedOrigins:  parseOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	return cfg, cfg.validate()
}

// parseOrigins splits a comma-separated origin list, falling back to the
// defaults when the variable is unset.
func parseOrigins(raw string) []string {
	if raw == "" {
		return defaultOrigins
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	if c.FetchTimeout < time.Second || c.FetchTimeout > 120*time.Second {
		return fmt.Errorf("%w: got %s", errTimeoutOutOfRange, c.FetchTimeout)
	}

	if c.ScanConcurrency < 1 || c.ScanConcurrency > 100 {
		return fmt.Errorf("%w: got %d", errConcurrencyOutOfRange, c.ScanConcurrency)
	}

	if len(c.AllowedOrigins) == 0 {
		return errNoOrigins
	}

	return nil
}
