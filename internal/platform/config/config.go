package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	Environment    string
	LogLevel       string
	JWTSecret      string
	SessionTTL     time.Duration
	StateFile      string
	DemoPassword   string
	LoginDelay     time.Duration
	MetricsEnabled bool
}

func Load() Config {
	// optional .env for local development; real env vars win
	_ = godotenv.Load()

	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      getEnv("JWT_SECRET", "demo-secret"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 12*time.Hour),
		StateFile:      getEnv("STATE_FILE", "hrms-state.json"),
		DemoPassword:   getEnv("DEMO_PASSWORD", "demo1234"),
		LoginDelay:     getEnvDuration("LOGIN_DELAY", time.Second),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.Environment == "production" {
		if c.JWTSecret == "" || c.JWTSecret == "demo-secret" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.DemoPassword == "demo1234" {
			return fmt.Errorf("DEMO_PASSWORD must be changed in production")
		}
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.LoginDelay < 0 {
		return fmt.Errorf("LOGIN_DELAY must not be negative")
	}
	return nil
}
