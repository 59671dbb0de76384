package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"unitconv/internal/conversion"
	"unitconv/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json

	Scale       int32       // fractional digits kept in results
	DefaultUnit domain.Unit // preselected unit on the screen; Unselected for none

	ServerURL     string        // remote unitconv serve base URL, e.g. http://127.0.0.1:8080
	ClientTimeout time.Duration // per-request timeout for ServerURL

	HTTP      HTTPConfig
	RateLimit RateLimitConfig
}

// HTTPConfig controls the serve command's listener.
type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// RateLimitConfig controls global and per-client limits of the HTTP API.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LoadConfig reads configuration from the environment, after loading an
// optional .env file from the working directory.
func LoadConfig() (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	scale, err := strconv.ParseInt(getEnv("UNITCONV_SCALE", strconv.Itoa(int(conversion.DefaultScale))), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid UNITCONV_SCALE: %w", err)
	}

	var defaultUnit domain.Unit
	if raw := getEnv("UNITCONV_DEFAULT_UNIT", ""); raw != "" {
		defaultUnit, err = domain.ParseUnit(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid UNITCONV_DEFAULT_UNIT: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:      strings.ToLower(getEnv("UNITCONV_LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnv("UNITCONV_LOG_FORMAT", "text")),
		Scale:         int32(scale),
		DefaultUnit:   defaultUnit,
		ServerURL:     strings.TrimRight(getEnv("UNITCONV_SERVER", ""), "/"),
		ClientTimeout: getEnvDuration("UNITCONV_CLIENT_TIMEOUT", 5*time.Second),
		HTTP: HTTPConfig{
			Addr:            getEnv("UNITCONV_HTTP_ADDR", ":8080"),
			ReadTimeout:     getEnvDuration("UNITCONV_HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("UNITCONV_HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getEnvDuration("UNITCONV_HTTP_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("UNITCONV_HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("UNITCONV_RATE_LIMIT_RPS", 50),
			Burst: getEnvInt("UNITCONV_RATE_LIMIT_BURST", 100),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Commands call it again after applying flag
// overrides.
func (c *Config) Validate() error {
	if c.Scale < 0 || c.Scale > conversion.MaxScale {
		return fmt.Errorf("UNITCONV_SCALE must be between 0 and %d, got %d", conversion.MaxScale, c.Scale)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("UNITCONV_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("UNITCONV_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.ClientTimeout <= 0 {
		return fmt.Errorf("UNITCONV_CLIENT_TIMEOUT must be positive")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("UNITCONV_HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("UNITCONV_RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("UNITCONV_RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
